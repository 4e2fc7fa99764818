package gconf

import (
	"reflect"

	"github.com/emberfi/ember"
	"github.com/emberfi/ember/errors"
)

// OwnedConfig is a configuration that declares its owner. A configuration
// update message must be signed by the owner to be authorized.
type OwnedConfig interface {
	Configuration
	GetOwner() ember.Address
}

// UpdateConfigurationHandler processes configuration patch messages. The
// message must carry a "Patch" field of the same type as the configuration.
// Non-zero fields of the patch overwrite the stored configuration, zero
// fields keep their current value. Ownership transfer is a patch of the
// owner field signed by the current owner.
type UpdateConfigurationHandler struct {
	pkg    string
	config OwnedConfig
	auth   ember.Authenticator
}

var _ ember.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler updating the configuration
// singleton of the named package.
func NewUpdateConfigurationHandler(pkg string, config OwnedConfig, auth ember.Authenticator) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:    pkg,
		config: config,
		auth:   auth,
	}
}

func (h UpdateConfigurationHandler) Check(ctx ember.Context, store ember.KVStore, tx ember.Tx) (*ember.CheckResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &ember.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx ember.Context, store ember.KVStore, tx ember.Tx) (*ember.DeliverResult, error) {
	if err := h.applyTx(ctx, store, tx); err != nil {
		return nil, err
	}
	return &ember.DeliverResult{}, nil
}

func (h UpdateConfigurationHandler) applyTx(ctx ember.Context, store ember.KVStore, tx ember.Tx) error {
	if err := Load(store, h.pkg, h.config); err != nil {
		return errors.Wrap(err, "load current configuration")
	}
	owner := h.config.GetOwner()
	if len(owner) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "configuration has no owner")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner did not sign transaction")
	}

	payload, err := patchPayload(tx)
	if err != nil {
		return errors.Wrap(err, "cannot get message payload")
	}
	if err := patch(h.config, payload); err != nil {
		return errors.Wrap(err, "cannot patch config with message payload")
	}

	return Save(store, h.pkg, h.config)
}

func patch(config, payload OwnedConfig) error {
	pType := reflect.TypeOf(payload)
	cType := reflect.TypeOf(config)
	if !pType.ConvertibleTo(cType) {
		return errors.Wrap(errors.ErrMsg, "config in message doesn't match store")
	}

	cval := reflect.ValueOf(config).Elem()
	pval := reflect.ValueOf(payload).Elem()

	for i := 0; i < cval.NumField(); i++ {
		got := pval.Field(i)

		// Zero values do not update the original configuration.
		if isZero(got) {
			continue
		}

		cval.Field(i).Set(got)
	}

	return nil
}

// isZero returns true if given value represents a zero value of a given type.
func isZero(val reflect.Value) bool {
	zero := reflect.Zero(val.Type()).Interface()
	return reflect.DeepEqual(val.Interface(), zero)
}

// patchPayload extracts the "Patch" field carried by the transaction
// message. It must be of the same type as the configuration.
func patchPayload(tx ember.Tx) (OwnedConfig, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	pval := reflect.ValueOf(msg)
	if pval.Kind() != reflect.Ptr || pval.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrInput, "invalid message container value: %T", msg)
	}
	field := pval.Elem().FieldByName("Patch")
	if !field.IsValid() || field.IsNil() {
		return nil, errors.Wrap(errors.ErrState, `"Patch" field is required`)
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrap(errors.ErrInput, `"Patch" field is of a wrong type`)
	}
	return payload, nil
}
