package service

import (
	"github.com/hkust/smart-buddy/internal/config"
	"github.com/hkust/smart-buddy/internal/repository"
	"github.com/hkust/smart-buddy/internal/token"
)

type Services struct {
	Token    *TokenService
	User     *UserService
	Message  *MessageService
	Resolver *token.Resolver
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenLifetime())
	resolver := token.NewResolver(codec)

	return &Services{
		Token:    NewTokenService(repos.User, codec),
		User:     NewUserService(repos.User),
		Message:  NewMessageService(repos.Message, resolver, StaticAdvice),
		Resolver: resolver,
	}
}
