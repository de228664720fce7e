package recipient

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/plmkit/notifier/internal/mocks/recipient"
	"github.com/plmkit/notifier/internal/model"
	"github.com/plmkit/notifier/internal/repository/delivery"
)

func TestResolver_Resolve_DeduplicatesAndSkipsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	prefsMock := mocks.NewMockpreferenceRepository(ctrl)
	r := NewResolver(usersMock, prefsMock, 0)

	usersMock.EXPECT().GetUser(gomock.Any(), int64(7)).
		Return(model.User{ID: 7, Name: "seven", Active: true}, nil)
	prefsMock.EXPECT().GetPreference(gomock.Any(), int64(7)).
		Return(model.RecipientPreference{UserID: 7, SystemEnabled: true}, nil)
	usersMock.EXPECT().GetUser(gomock.Any(), int64(42)).
		Return(model.User{}, delivery.ErrUserNotFound)

	audience, err := r.Resolve(context.Background(), []int64{7, 7, 0, 42})
	require.NoError(t, err)
	require.Len(t, audience, 1)
	assert.Equal(t, "seven", audience[7].User.Name)
}

func TestResolver_Resolve_ExcludesInactiveUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	prefsMock := mocks.NewMockpreferenceRepository(ctrl)
	r := NewResolver(usersMock, prefsMock, 0)

	usersMock.EXPECT().GetUser(gomock.Any(), int64(7)).
		Return(model.User{ID: 7, Active: false}, nil)

	audience, err := r.Resolve(context.Background(), []int64{7})
	require.NoError(t, err)
	assert.Empty(t, audience)
}

func TestResolver_Resolve_DefaultPreferenceWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	prefsMock := mocks.NewMockpreferenceRepository(ctrl)
	r := NewResolver(usersMock, prefsMock, 0)

	usersMock.EXPECT().GetUser(gomock.Any(), int64(7)).
		Return(model.User{ID: 7, Active: true}, nil)
	prefsMock.EXPECT().GetPreference(gomock.Any(), int64(7)).
		Return(model.RecipientPreference{}, delivery.ErrPreferenceNotFound)

	audience, err := r.Resolve(context.Background(), []int64{7})
	require.NoError(t, err)
	require.Len(t, audience, 1)

	pref := audience[7].Pref
	assert.True(t, pref.ChannelEnabled(model.ChannelSystem))
	assert.True(t, pref.ChannelEnabled(model.ChannelEmail))
	assert.False(t, pref.ChannelEnabled(model.ChannelWebhook), "webhook needs an explicit URL")
}

func TestResolver_ResolveRule_AdminFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	usersMock := mocks.NewMockuserRepository(ctrl)
	prefsMock := mocks.NewMockpreferenceRepository(ctrl)
	r := NewResolver(usersMock, prefsMock, 99)

	usersMock.EXPECT().GetUser(gomock.Any(), int64(7)).
		Return(model.User{}, delivery.ErrUserNotFound)
	usersMock.EXPECT().GetUser(gomock.Any(), int64(99)).
		Return(model.User{ID: 99, Active: true}, nil)
	prefsMock.EXPECT().GetPreference(gomock.Any(), int64(99)).
		Return(model.RecipientPreference{UserID: 99, SystemEnabled: true}, nil)

	audience, err := r.ResolveRule(context.Background(), Rule{OwnerID: 7})
	require.NoError(t, err)
	require.Len(t, audience, 1)
	assert.Contains(t, audience, int64(99))
}

func TestRule_ResolvedChannels_DefaultsToSystem(t *testing.T) {
	assert.Equal(t, []model.Channel{model.ChannelSystem}, Rule{}.ResolvedChannels())
	assert.Equal(t, []model.Channel{model.ChannelEmail},
		Rule{Channels: []model.Channel{model.ChannelEmail}}.ResolvedChannels())
}

func TestTarget(t *testing.T) {
	m := Member{
		User: model.User{ID: 7, Email: "seven@example.com", Phone: "13800000000", WecomUserID: "zhangsan"},
		Pref: model.RecipientPreference{WebhookURL: "https://hooks.example.com/x"},
	}

	tests := []struct {
		channel model.Channel
		target  string
		ok      bool
	}{
		{model.ChannelSystem, "7", true},
		{model.ChannelEmail, "seven@example.com", true},
		{model.ChannelSMS, "13800000000", true},
		{model.ChannelWecom, "zhangsan", true},
		{model.ChannelWebhook, "https://hooks.example.com/x", true},
		{model.Channel("carrier-pigeon"), "", false},
	}

	for _, tt := range tests {
		target, ok := Target(m, tt.channel)
		assert.Equal(t, tt.target, target, "channel %s", tt.channel)
		assert.Equal(t, tt.ok, ok, "channel %s", tt.channel)
	}

	_, ok := Target(Member{User: model.User{ID: 8}}, model.ChannelEmail)
	assert.False(t, ok, "empty email has no target")
}
