package controller

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/skjjcruz/owner-dashboard-v3/db"
)

func (c *controller) LockedUsername(ctx context.Context) (string, error) {
	username, err := c.db.GetSetting(ctx, db.SettingLockedUsername)
	if err != nil {
		if errors.Is(err, db.ErrSettingNotFound) {
			return "", nil
		}
		return "", err
	}
	return username, nil
}

func (c *controller) LockUsername(ctx context.Context, username string) error {
	if username == "" {
		return errors.New("cannot lock an empty username")
	}
	if err := c.db.SaveSetting(ctx, db.SettingLockedUsername, username); err != nil {
		return fmt.Errorf("error locking username: %w", err)
	}
	return nil
}

func (c *controller) UnlockUsername(ctx context.Context) error {
	if err := c.db.DeleteSetting(ctx, db.SettingLockedUsername); err != nil {
		return fmt.Errorf("error unlocking username: %w", err)
	}
	return nil
}

// LastSelection returns the league and seasons from the previous visit.
// Empty values mean nothing is remembered yet.
func (c *controller) LastSelection(ctx context.Context) (leagueID, season, statsSeason string) {
	return c.settingOrEmpty(ctx, db.SettingLastLeagueID),
		c.settingOrEmpty(ctx, db.SettingLastSeason),
		c.settingOrEmpty(ctx, db.SettingLastStatsYear)
}

func (c *controller) settingOrEmpty(ctx context.Context, key string) string {
	v, err := c.db.GetSetting(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrSettingNotFound) {
			log.Printf("error reading setting %s: %v", key, err)
		}
		return ""
	}
	return v
}
