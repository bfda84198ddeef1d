package usecase

import (
	"golang.org/x/oauth2"

	"github.com/Rudra-Tiwari-codes/Calendar-test/internal/repository"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/encrypter"
	pkgLog "github.com/Rudra-Tiwari-codes/Calendar-test/pkg/log"
	"github.com/Rudra-Tiwari-codes/Calendar-test/pkg/scope"
)

type implUseCase struct {
	l               pkgLog.Logger
	repo            repository.UserRepository
	oauthCfg        *oauth2.Config
	states          scope.Manager
	enc             encrypter.Encrypter
	defaultTimezone string
}

// New creates a new account UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.UserRepository,
	oauthCfg *oauth2.Config,
	states scope.Manager,
	enc encrypter.Encrypter,
	defaultTimezone string,
) *implUseCase {
	return &implUseCase{
		l:               l,
		repo:            repo,
		oauthCfg:        oauthCfg,
		states:          states,
		enc:             enc,
		defaultTimezone: defaultTimezone,
	}
}
