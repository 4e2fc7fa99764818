package vesting

import (
	"encoding/json"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/coin"
	"github.com/emberfi/ember/embertest"
	"github.com/emberfi/ember/store"
	"github.com/emberfi/ember/x/cash"
)

func TestGenesis(t *testing.T) {
	Convey("Test initializer", t, func() {
		alice := embertest.NewAddress()
		bob := embertest.NewAddress()

		genesis := fmt.Sprintf(`
		{
			"vesting": {
				"start": 1709251200,
				"allocations": [
					{"beneficiary": "%s", "total": 5000, "cycle_days": 30},
					{"beneficiary": "%s", "total": 1500, "cycle_days": 90}
				]
			}
		}`, alice, bob)

		var opts ember.Options
		err := json.Unmarshal([]byte(genesis), &opts)
		So(err, ShouldBeNil)

		db := store.MemStore()

		var init Initializer
		err = init.FromGenesis(opts, db)
		So(err, ShouldBeNil)

		ctrl := NewController(cash.NewController(cash.NewBucket()))

		Convey("Allocations are stored", func() {
			a, err := ctrl.Allocation(db, alice)
			So(err, ShouldBeNil)
			So(a, ShouldNotBeNil)
			So(a.Total, ShouldEqual, 5000)
			So(a.CycleDays, ShouldEqual, 30)
			So(a.Released, ShouldEqual, 0)

			b, err := ctrl.Allocation(db, bob)
			So(err, ShouldBeNil)
			So(b, ShouldNotBeNil)
			So(b.Total, ShouldEqual, 1500)
			So(b.CycleDays, ShouldEqual, 90)
		})

		Convey("The pool holds the sum of all grants", func() {
			balance, err := cash.NewController(cash.NewBucket()).Balance(db, ctrl.Pool())
			So(err, ShouldBeNil)
			So(balance, ShouldEqual, coin.Amount(6500))
		})
	})
}
