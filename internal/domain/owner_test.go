package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

func TestNewOwnerRef(t *testing.T) {
	tests := []struct {
		name    string
		userID  *int64
		orgID   *int64
		want    OwnerRef
		wantErr bool
	}{
		{name: "user only", userID: ptr.Ptr(int64(42)), want: UserOwner(42)},
		{name: "organization only", orgID: ptr.Ptr(int64(10)), want: OrganizationOwner(10)},
		{name: "both set", userID: ptr.Ptr(int64(42)), orgID: ptr.Ptr(int64(10)), wantErr: true},
		{name: "neither set", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewOwnerRef(tt.userID, tt.orgID)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOwner)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOwnerRef_Validate(t *testing.T) {
	assert.NoError(t, UserOwner(1).Validate())
	assert.NoError(t, OrganizationOwner(7).Validate())

	assert.ErrorIs(t, OwnerRef{Type: "group", ID: 1}.Validate(), ErrInvalidOwner)
	assert.ErrorIs(t, UserOwner(0).Validate(), ErrInvalidOwner)
	assert.ErrorIs(t, OrganizationOwner(-5).Validate(), ErrInvalidOwner)
}

func TestOwnerRef_String(t *testing.T) {
	assert.Equal(t, "user:42", UserOwner(42).String())
	assert.Equal(t, "organization:10", OrganizationOwner(10).String())
}

func TestBooking_CountsAgainstCapacity(t *testing.T) {
	counts := map[BookingStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCompleted: true,
		StatusCancelled: false,
		StatusNoShow:    false,
	}

	for status, want := range counts {
		b := &Booking{Status: status}
		assert.Equal(t, want, b.CountsAgainstCapacity(), "status %s", status)
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusNoShow}).CanBeCancelled())
}
