package service

import "context"

// AdviceFunc produces the advice reply for a user's message. It is an
// opaque text transform supplied from outside the service.
type AdviceFunc func(ctx context.Context, content string) (string, error)

const advicePrefix = "Ai Advice for: "

// StaticAdvice echoes the question behind a fixed prefix. It stands in
// until a real advice backend is wired up.
func StaticAdvice(ctx context.Context, content string) (string, error) {
	return advicePrefix + content, nil
}
