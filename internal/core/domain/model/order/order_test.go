package order_test

import (
	"testing"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddressee(t *testing.T) order.Addressee {
	t.Helper()
	addressee, err := order.NewAddressee("Maria Silva", "+5511999887766")
	require.NoError(t, err)
	return addressee
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCondoID := kernel.NewUUID()
	addressee := validAddressee(t)

	t.Run("should create valid pending order", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCondoID, "tok-abc", "123456", addressee)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CondominiumID().IsEqual(validCondoID))
		assert.Equal(t, "tok-abc", o.URL())
		assert.Equal(t, "123456", o.Code())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Signature())
		assert.Nil(t, o.DeletedAt())
		assert.False(t, o.IsDeleted())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validCondoID, "tok-abc", "123456", addressee)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty url", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCondoID, "", "123456", addressee)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty code", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCondoID, "tok-abc", "", addressee)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed addressee", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCondoID, "tok-abc", "123456", order.Addressee{})

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrAddresseeIsNotConstructed)
	})

	t.Run("should collect multiple violations together", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCondoID, "", "", addressee)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "url")
		assert.Contains(t, err.Error(), "code")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_MatchCode(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "tok-abc", "654321", validAddressee(t))
	require.NoError(t, err)

	t.Run("matches the stored code", func(t *testing.T) {
		assert.True(t, o.MatchCode("654321"))
	})

	t.Run("rejects a different code", func(t *testing.T) {
		assert.False(t, o.MatchCode("123456"))
		assert.False(t, o.MatchCode(""))
	})
}

func TestOrder_Deliver(t *testing.T) {
	signature := []byte("png-bytes")

	t.Run("should transition pending order to delivered", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "tok-abc", "123456", validAddressee(t))
		require.NoError(t, err)
		createdAt := o.CreatedAt()

		err = o.Deliver(signature)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, signature, o.Signature())
		assert.False(t, o.UpdatedAt().Before(createdAt))
	})

	t.Run("should reject second delivery", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "tok-abc", "123456", validAddressee(t))
		require.NoError(t, err)
		require.NoError(t, o.Deliver(signature))

		err = o.Deliver([]byte("other"))

		require.ErrorIs(t, err, order.ErrOrderAlreadyAccepted)
		assert.Equal(t, signature, o.Signature())
	})

	t.Run("should require a signature", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "tok-abc", "123456", validAddressee(t))
		require.NoError(t, err)

		err = o.Deliver(nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_MarkDeleted(t *testing.T) {
	t.Run("sets deletedAt once and keeps the first timestamp", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "tok-abc", "123456", validAddressee(t))
		require.NoError(t, err)

		o.MarkDeleted()
		require.NotNil(t, o.DeletedAt())
		first := *o.DeletedAt()

		time.Sleep(time.Millisecond)
		o.MarkDeleted()

		assert.True(t, o.IsDeleted())
		assert.Equal(t, first, *o.DeletedAt())
	})

	t.Run("is independent of status", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "tok-abc", "123456", validAddressee(t))
		require.NoError(t, err)
		require.NoError(t, o.Deliver([]byte("sig")))

		o.MarkDeleted()

		assert.True(t, o.IsDeleted())
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	condoID := kernel.NewUUID()
	addressee := validAddressee(t)
	createdAt := time.Now().UTC().Add(-time.Hour)
	updatedAt := time.Now().UTC()

	t.Run("restores a delivered order with signature", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, condoID, "tok-abc", "123456", addressee,
			order.Delivered, []byte("sig"), createdAt, updatedAt, nil,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, []byte("sig"), o.Signature())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("restores a soft-deleted order", func(t *testing.T) {
		deletedAt := time.Now().UTC()

		o, err := order.RestoreOrder(
			id, condoID, "tok-abc", "123456", addressee,
			order.Pending, nil, createdAt, updatedAt, &deletedAt,
		)

		require.NoError(t, err)
		assert.True(t, o.IsDeleted())
	})

	t.Run("rejects delivered order without signature", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, condoID, "tok-abc", "123456", addressee,
			order.Delivered, nil, createdAt, updatedAt, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects pending order with signature", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, condoID, "tok-abc", "123456", addressee,
			order.Pending, []byte("sig"), createdAt, updatedAt, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, condoID, "tok-abc", "123456", addressee,
			order.Unknown, nil, createdAt, updatedAt, nil,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}
