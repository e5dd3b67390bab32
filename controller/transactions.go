package controller

import (
	"context"
	"log"
	"slices"
	"strings"

	"github.com/skjjcruz/owner-dashboard-v3/model"
)

// maxTransactions caps the activity feed so one busy waiver night doesn't
// fill the page.
const maxTransactions = 30

const fallbackTransactionType = "MOVE"

// RecentTransactions summarizes the current week's league activity, newest
// first. The feed is decoration next to the comparison, so a failed fetch
// comes back as an empty feed rather than an error.
func (c *controller) RecentTransactions(ctx context.Context) ([]model.TransactionSummary, error) {
	session := c.ActiveSession()
	if session == nil {
		return nil, ErrNoSession
	}

	transactions, err := c.sleeper.GetTransactions(session.League.ID, session.Week)
	if err != nil {
		log.Printf("error loading transactions for league %s week %d: %v", session.League.ID, session.Week, err)
		return []model.TransactionSummary{}, nil
	}

	slices.SortFunc(transactions, func(a, b model.Transaction) int {
		return b.Created.Compare(a.Created)
	})
	if len(transactions) > maxTransactions {
		transactions = transactions[:maxTransactions]
	}

	summaries := make([]model.TransactionSummary, 0, len(transactions))
	for _, tx := range transactions {
		summaries = append(summaries, model.TransactionSummary{
			Actor:   transactionActor(&tx, session.UsersByID),
			Type:    transactionType(tx.Type),
			Added:   playerNames(tx.Adds, session.Players),
			Dropped: playerNames(tx.Drops, session.Players),
			Created: tx.Created,
		})
	}
	return summaries, nil
}

// transactionActor names whoever made the move, trying the creator first and
// the owner second. Commissioner moves sometimes carry neither.
func transactionActor(tx *model.Transaction, usersByID map[string]*model.User) string {
	if u, found := usersByID[tx.CreatorID]; found {
		return u.DisplayOrUsername()
	}
	if u, found := usersByID[tx.OwnerID]; found {
		return u.DisplayOrUsername()
	}
	return "Unknown"
}

func transactionType(t string) string {
	if t == "" {
		return fallbackTransactionType
	}
	return strings.ToUpper(t)
}

// playerNames resolves the player ids of an add or drop set to display
// names, sorted. Ids missing from the player table show as the raw id so the
// move is still visible.
func playerNames(moves map[string]int, players map[string]*model.Player) []string {
	if len(moves) == 0 {
		return nil
	}
	names := make([]string, 0, len(moves))
	for id := range moves {
		if p, found := players[id]; found {
			names = append(names, p.FullName())
		} else {
			names = append(names, id)
		}
	}
	slices.Sort(names)
	return names
}
