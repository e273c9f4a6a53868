package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelog-service/internal/pkg/errors"
)

func TestElectricalInfo(t *testing.T) {
	tests := []struct {
		name       string
		electrical string
		want       ElectricalSpec
		wantErr    bool
	}{
		{
			name:       "full spec",
			electrical: "230/50/C,F",
			want:       ElectricalSpec{Volts: "230", Hertz: "50", Plugs: []string{"C", "F"}},
		},
		{
			name:       "single plug",
			electrical: "120/60/A",
			want:       ElectricalSpec{Volts: "120", Hertz: "60", Plugs: []string{"A"}},
		},
		{
			name:       "empty input yields empty record",
			electrical: "",
			want:       ElectricalSpec{},
		},
		{
			name:       "missing segment is a data error",
			electrical: "230/50",
			wantErr:    true,
		},
		{
			name:       "too many segments is a data error",
			electrical: "230/50/C/F",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &EntityInfo{Electrical: tt.electrical}
			spec, err := info.ElectricalInfo()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrMalformedElectrical)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec)
		})
	}
}

func TestSquareMiles(t *testing.T) {
	var nilArea *int64
	info := &EntityInfo{Area: nilArea}
	assert.Nil(t, info.SquareMiles(), "nil area must propagate, not default to zero")

	area := int64(2589)
	info = &EntityInfo{Area: &area}
	require.NotNil(t, info.SquareMiles())
	assert.Equal(t, int64(999), *info.SquareMiles(), "conversion truncates")

	zero := int64(0)
	info = &EntityInfo{Area: &zero}
	require.NotNil(t, info.SquareMiles())
	assert.Equal(t, int64(0), *info.SquareMiles())
}

func TestLanguageNames(t *testing.T) {
	info := &EntityInfo{}
	assert.Equal(t, "Unknown", info.LanguageNames())

	info.Languages = []*Language{{Name: "French"}, {Name: "Dutch"}}
	assert.Equal(t, "French, Dutch", info.LanguageNames())
}

func TestBucketListVisibleTo(t *testing.T) {
	owner := int64(7)
	private := &BucketList{OwnerID: &owner, IsPublic: false}
	public := &BucketList{OwnerID: &owner, IsPublic: true}

	assert.True(t, public.VisibleTo(Identity{}))
	assert.False(t, private.VisibleTo(Identity{}))
	assert.True(t, private.VisibleTo(Identity{ID: 7, Authenticated: true}))
	assert.False(t, private.VisibleTo(Identity{ID: 8, Authenticated: true}))
}

func TestProfileVisibleTo(t *testing.T) {
	profile := &Profile{UserID: 7, Access: AccessProtected}

	assert.True(t, profile.VisibleTo(Identity{ID: 7, Authenticated: true}), "owner always sees own profile")
	assert.True(t, profile.VisibleTo(Identity{ID: 9, Authenticated: true}), "protected is open to authenticated viewers")
	assert.False(t, profile.VisibleTo(Identity{}), "protected hides from anonymous")

	profile.Access = AccessPrivate
	assert.False(t, profile.VisibleTo(Identity{ID: 9, Authenticated: true}))
	assert.True(t, profile.VisibleTo(Identity{ID: 7, Authenticated: true}))

	profile.Access = AccessPublic
	assert.True(t, profile.VisibleTo(Identity{}))
}
