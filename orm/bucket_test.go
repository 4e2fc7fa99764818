package orm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfi/ember/store"
)

func TestBucketSaveGet(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewSimpleObj(nil, new(Counter)))

	key := []byte("alpha")

	// missing entry is nil, not an error
	obj, err := bucket.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)

	require.NoError(t, bucket.Save(db, NewSimpleObj(key, &Counter{Count: 77})))

	obj, err = bucket.Get(db, key)
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, int64(77), obj.Value().(*Counter).Count)

	// keys are namespaced, another bucket cannot see the data
	other := NewBucket("other", NewSimpleObj(nil, new(Counter)))
	obj, err = other.Get(db, key)
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestBucketDelete(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket("cntr", NewSimpleObj(nil, new(Counter)))

	key := []byte("beta")
	require.NoError(t, bucket.Save(db, NewSimpleObj(key, &Counter{Count: 1})))

	has, err := bucket.Has(db, key)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, bucket.Delete(db, key))
	has, err = bucket.Has(db, key)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestBucketRejectsInvalidName(t *testing.T) {
	assert.Panics(t, func() {
		NewBucket("Bad Name", NewSimpleObj(nil, new(Counter)))
	})
}

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := map[string]struct {
		bucket, name string
		init         int64
		increments   int64
	}{
		"fresh":              {"aaa", "id", 0, 22},
		"other name":         {"aaa", "other", 0, 11},
		"preset":             {"bbb", "id", 22, 18},
		"single":             {"ccc", "id", 0, 1},
		"large preset count": {"ddd", "id", 11, 248},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			if tc.init != 0 {
				require.NoError(t, s.Set(db, tc.init))
			}

			var (
				val int64
				err error
			)
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				require.NoError(t, err)
			}
			assert.Equal(t, tc.init+tc.increments, val)

			latest, raw, err := s.Latest(db)
			require.NoError(t, err)
			assert.Equal(t, val, latest)
			assert.Equal(t, EncodeSequence(val), raw)
		})
	}
}

func TestSequenceEncoding(t *testing.T) {
	assert.Equal(t, int64(0), DecodeSequence(nil))
	for _, val := range []int64{0, 1, 255, 256, 1 << 40} {
		assert.Equal(t, val, DecodeSequence(EncodeSequence(val)))
	}
}
