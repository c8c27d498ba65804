package model

import "context"

type ContextManager interface {
	SetClientConfigToContext(ctx context.Context, cfg ClientConfig) context.Context
	GetClientConfigFromContext(ctx context.Context) (ClientConfig, bool)
}
