package infra

import "context"

type InsightClientInterface interface {
	GetCulturalInsight(ctx context.Context, productName, productContext string) string
}

var _ InsightClientInterface = (*InsightClient)(nil)
