package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/event"
	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/model"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/encrypter"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/gcalendar"
)

type gcalFactory struct {
	oauthCfg *oauth2.Config
	enc      encrypter.Encrypter
}

// NewCalendarFactory builds per-user Google Calendar clients by unsealing
// the stored OAuth token.
func NewCalendarFactory(oauthCfg *oauth2.Config, enc encrypter.Encrypter) event.CalendarFactory {
	return &gcalFactory{oauthCfg: oauthCfg, enc: enc}
}

func (f *gcalFactory) ForUser(ctx context.Context, user model.User) (event.Calendar, error) {
	if !user.Linked() {
		return nil, event.ErrNotLinked
	}

	raw, err := f.enc.Decrypt(user.TokenCiphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal stored token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		return nil, fmt.Errorf("failed to decode stored token: %w", err)
	}

	return gcalendar.NewClientFromToken(ctx, f.oauthCfg, &tok)
}
