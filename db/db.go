package db

import (
	"context"
)

// Setting keys used by the dashboard. The settings table is the only thing
// persisted; everything else is refetched on every league load.
const (
	SettingLockedUsername = "locked_username"
	SettingLastLeagueID   = "last_league_id"
	SettingLastSeason     = "last_season"
	SettingLastStatsYear  = "last_stats_season"
)

type DB interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SaveSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
}
