// Package recipient resolves the audience of an alert: which users get
// notified, with which preference settings, on which channels.
package recipient

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/model"
	"github.com/plmkit/notifier/internal/repository/delivery"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/recipient/mock.go -package=mocks

type userRepository interface {
	GetUser(ctx context.Context, id int64) (model.User, error)
}

type preferenceRepository interface {
	GetPreference(ctx context.Context, userID int64) (model.RecipientPreference, error)
}

// Rule describes a rule-based audience: the owner and handler of the
// source entity plus any extra configured user ids, with an optional
// channel list.
type Rule struct {
	OwnerID   int64
	HandlerID int64
	ExtraIDs  []int64
	Channels  []model.Channel
}

// Member is one resolved audience entry.
type Member struct {
	User model.User
	Pref model.RecipientPreference
}

// Audience maps user id to the resolved member. Set semantics: duplicate
// ids collapse to one entry.
type Audience map[int64]Member

// Resolver turns recipient ids or rules into an audience.
type Resolver struct {
	users       userRepository
	prefs       preferenceRepository
	adminUserID int64 // fallback when a rule resolves nobody
}

func NewResolver(users userRepository, prefs preferenceRepository, adminUserID int64) *Resolver {
	return &Resolver{users: users, prefs: prefs, adminUserID: adminUserID}
}

// defaultPreference is applied when a user has no settings row: every
// channel except webhook is opted in (webhook needs a configured URL).
func defaultPreference(userID int64) model.RecipientPreference {
	return model.RecipientPreference{
		UserID:        userID,
		SystemEnabled: true,
		EmailEnabled:  true,
		SMSEnabled:    true,
		WecomEnabled:  true,
	}
}

// Resolve loads the given users and their preferences. Unknown and
// inactive users are silently excluded; duplicates collapse.
func (r *Resolver) Resolve(ctx context.Context, ids []int64) (Audience, error) {
	audience := make(Audience, len(ids))

	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := audience[id]; ok {
			continue
		}

		user, err := r.users.GetUser(ctx, id)
		if err != nil {
			if errors.Is(err, delivery.ErrUserNotFound) {
				zlog.Logger.Warn().Int64("user_id", id).Msg("recipient not found, skipping")
				continue
			}
			return nil, fmt.Errorf("get user %d: %w", id, err)
		}
		if !user.Active {
			continue
		}

		pref, err := r.prefs.GetPreference(ctx, id)
		if err != nil {
			if !errors.Is(err, delivery.ErrPreferenceNotFound) {
				return nil, fmt.Errorf("get preference %d: %w", id, err)
			}
			pref = defaultPreference(id)
		}

		audience[id] = Member{User: user, Pref: pref}
	}

	return audience, nil
}

// ResolveRule resolves a rule-based audience: owner + handler + extra
// configured ids. When nobody resolves, the administrative account is the
// audience of last resort.
func (r *Resolver) ResolveRule(ctx context.Context, rule Rule) (Audience, error) {
	ids := make([]int64, 0, 2+len(rule.ExtraIDs))
	ids = append(ids, rule.OwnerID, rule.HandlerID)
	ids = append(ids, rule.ExtraIDs...)

	audience, err := r.Resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(audience) == 0 && r.adminUserID != 0 {
		zlog.Logger.Warn().Int64("admin_user_id", r.adminUserID).Msg("rule resolved nobody, falling back to admin account")
		return r.Resolve(ctx, []int64{r.adminUserID})
	}

	return audience, nil
}

// ResolvedChannels returns the rule's channel list, defaulting to system alone.
func (rule Rule) ResolvedChannels() []model.Channel {
	if len(rule.Channels) > 0 {
		return rule.Channels
	}
	return []model.Channel{model.ChannelSystem}
}

// Target resolves the channel-specific delivery target for a member.
// The second return value is false when no target can be resolved; the
// pair is then simply skipped, not treated as an error.
func Target(m Member, ch model.Channel) (string, bool) {
	switch ch {
	case model.ChannelSystem:
		return strconv.FormatInt(m.User.ID, 10), true
	case model.ChannelEmail:
		return m.User.Email, m.User.Email != ""
	case model.ChannelSMS:
		return m.User.Phone, m.User.Phone != ""
	case model.ChannelWecom:
		return m.User.WecomUserID, m.User.WecomUserID != ""
	case model.ChannelWebhook:
		return m.Pref.WebhookURL, m.Pref.WebhookURL != ""
	}
	return "", false
}
