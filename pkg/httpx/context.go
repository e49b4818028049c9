package httpx

import "context"

type ctxKey string

// CtxKeySubject holds the authenticated caller (their email). It lives here
// rather than in the guard so rate limiting can key on it without an import
// cycle.
const CtxKeySubject ctxKey = "subject"

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, CtxKeySubject, subject)
}

func SubjectFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySubject).(string); ok {
		return v
	}
	return ""
}
