package memory

import (
	"context"
	"testing"

	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
)

func TestGameweekRepositoryCurrent(t *testing.T) {
	repo := NewGameweekRepository(SeedGameweeks(), SeedRefreshEvents())

	current, found, err := repo.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if !found {
		t.Fatal("expected a current gameweek")
	}
	if current.ID != SeedCurrentGameweek {
		t.Fatalf("current gameweek = %d, want %d", current.ID, SeedCurrentGameweek)
	}
	if current.DataChecked {
		t.Fatal("current gameweek should not be data checked yet")
	}

	empty := NewGameweekRepository(nil, nil)
	_, found, err = empty.Current(context.Background())
	if err != nil {
		t.Fatalf("Current on empty repo: %v", err)
	}
	if found {
		t.Fatal("empty repo reported a current gameweek")
	}
}

func TestGameweekRepositoryRefreshEventsKeepsLatestPerKind(t *testing.T) {
	repo := NewGameweekRepository(SeedGameweeks(), SeedRefreshEvents())

	events, err := repo.RefreshEvents(context.Background())
	if err != nil {
		t.Fatalf("RefreshEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d refresh events, want 2", len(events))
	}
	if events[0].Kind != gameweek.RefreshFast || events[1].Kind != gameweek.RefreshSlow {
		t.Fatalf("unexpected kind order: %s, %s", events[0].Kind, events[1].Kind)
	}
	if got := events[0].OccurredAt.Format("15:04:05"); got != "13:59:30" {
		t.Fatalf("fast refresh at %s, want 13:59:30", got)
	}
	if got := events[1].OccurredAt.Format("15:04:05"); got != "13:45:00" {
		t.Fatalf("slow refresh at %s, want 13:45:00", got)
	}
}

func TestTeamRepositoryGetByIDs(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	teams, err := repo.GetByIDs(context.Background(), []int64{teamLiverpool, teamArsenal, 999})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("got %d teams, want 2", len(teams))
	}
	if teams[0].ID != teamArsenal || teams[1].ID != teamLiverpool {
		t.Fatalf("teams not ordered by id: %d, %d", teams[0].ID, teams[1].ID)
	}

	teams, err = repo.GetByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetByIDs with no ids: %v", err)
	}
	if teams != nil {
		t.Fatalf("expected nil for empty id list, got %d teams", len(teams))
	}
}

func TestFixtureRepositoryListByGameweek(t *testing.T) {
	repo := NewFixtureRepository(SeedFixtures())

	fixtures, err := repo.ListByGameweek(context.Background(), SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if len(fixtures) != 4 {
		t.Fatalf("got %d fixtures, want 4", len(fixtures))
	}
	for i, want := range []int64{2201, 2202, 2203, 2204} {
		if fixtures[i].ID != want {
			t.Fatalf("fixture %d = %d, want %d", i, fixtures[i].ID, want)
		}
	}
}

func TestFixtureRepositoryLastMeetings(t *testing.T) {
	repo := NewFixtureRepository(SeedFixtures())

	meetings, err := repo.LastMeetings(context.Background(), SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("LastMeetings: %v", err)
	}
	if len(meetings) != 4 {
		t.Fatalf("got %d meetings, want 4", len(meetings))
	}
	for i, want := range []int64{301, 302, 303, 304} {
		if meetings[i].ID != want {
			t.Fatalf("meeting %d = %d, want %d", i, meetings[i].ID, want)
		}
	}

	// A first-half gameweek has no earlier reverse meeting.
	meetings, err = repo.LastMeetings(context.Background(), 3)
	if err != nil {
		t.Fatalf("LastMeetings for gameweek 3: %v", err)
	}
	if len(meetings) != 0 {
		t.Fatalf("got %d meetings for gameweek 3, want 0", len(meetings))
	}
}

func TestPlayerStatsRepositoryLastMeetingStats(t *testing.T) {
	repo := NewPlayerStatsRepository(SeedPlayerStats(), SeedFixtures())

	rows, err := repo.LastMeetingStats(context.Background(), SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("LastMeetingStats: %v", err)
	}
	if len(rows) != 16 {
		t.Fatalf("got %d rows, want 16", len(rows))
	}
	for _, row := range rows {
		if row.Gameweek != 3 {
			t.Fatalf("row for fixture %d has gameweek %d, want 3", row.FixtureID, row.Gameweek)
		}
	}
	if rows[0].FixtureID != 301 || rows[0].PlayerID != playerRaya {
		t.Fatalf("first row = fixture %d player %d, want fixture 301 player %d", rows[0].FixtureID, rows[0].PlayerID, playerRaya)
	}
}

func TestPickRepositoryLeaguePicks(t *testing.T) {
	repo := NewPickRepository(SeedLeaguePicks(), SeedLeagueMembers())

	picks, err := repo.LeaguePicks(context.Background(), SeedLeagueID, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("LeaguePicks: %v", err)
	}
	if picks.ManagerCount != 4 {
		t.Fatalf("manager count = %d, want 4", picks.ManagerCount)
	}
	if len(picks.Picks) != 30 {
		t.Fatalf("got %d picks, want 30", len(picks.Picks))
	}

	byManager := picks.ByManager()
	if len(byManager[SeedManagerID]) != 15 {
		t.Fatalf("viewer squad has %d picks, want 15", len(byManager[SeedManagerID]))
	}

	unknown, err := repo.LeaguePicks(context.Background(), 1, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("LeaguePicks for unknown league: %v", err)
	}
	if unknown.ManagerCount != 0 || len(unknown.Picks) != 0 {
		t.Fatal("unknown league should have no picks")
	}
}

func TestManagerRepositorySummary(t *testing.T) {
	repo := NewManagerRepository(SeedManagerData(), SeedLeaguePicks(), SeedPlayerStats(), SeedGameweeks())

	summary, found, err := repo.Summary(context.Background(), SeedManagerID, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !found {
		t.Fatal("expected a summary for the seeded gameweek")
	}
	if summary.TotalPoints != 1289 {
		t.Fatalf("total points = %d, want 1289", summary.TotalPoints)
	}

	_, found, err = repo.Summary(context.Background(), SeedManagerID, 19)
	if err != nil {
		t.Fatalf("Summary for unseeded gameweek: %v", err)
	}
	if found {
		t.Fatal("gameweek 19 should have no summary")
	}

	_, found, err = repo.Summary(context.Background(), 999, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("Summary for unknown manager: %v", err)
	}
	if found {
		t.Fatal("unknown manager should have no summary")
	}
}

func TestManagerRepositoryOwnedPerformance(t *testing.T) {
	repo := NewManagerRepository(SeedManagerData(), SeedLeaguePicks(), SeedPlayerStats(), SeedGameweeks())

	points, err := repo.OwnedPerformance(context.Background(), SeedManagerID, manager.WindowAll, stat.KeyPoints)
	if err != nil {
		t.Fatalf("OwnedPerformance: %v", err)
	}
	if len(points) == 0 {
		t.Fatal("expected performance points")
	}

	index := make(map[int64]map[int]manager.PerformancePoint)
	for _, point := range points {
		if index[point.PlayerID] == nil {
			index[point.PlayerID] = make(map[int]manager.PerformancePoint)
		}
		index[point.PlayerID][point.Gameweek] = point
	}

	haaland22 := index[playerHaaland][22]
	if haaland22.Value != 13 || !haaland22.Owned {
		t.Fatalf("Haaland gw22 = (%.0f, owned %t), want (13, owned true)", haaland22.Value, haaland22.Owned)
	}
	haaland3 := index[playerHaaland][3]
	if haaland3.Value != 7 || haaland3.Owned {
		t.Fatalf("Haaland gw3 = (%.0f, owned %t), want (7, owned false)", haaland3.Value, haaland3.Owned)
	}
	watkins3 := index[playerWatkins][3]
	if watkins3.Value != 9 || watkins3.Owned {
		t.Fatalf("Watkins gw3 = (%.0f, owned %t), want (9, owned false)", watkins3.Value, watkins3.Owned)
	}
	if _, ok := index[playerSon]; ok {
		t.Fatal("Son was never picked by the viewer and should not appear")
	}

	// The window bounds samples by gameweek, not by ownership.
	recent, err := repo.OwnedPerformance(context.Background(), SeedManagerID, manager.WindowLast6, stat.KeyPoints)
	if err != nil {
		t.Fatalf("OwnedPerformance last6: %v", err)
	}
	for _, point := range recent {
		if point.Gameweek <= SeedCurrentGameweek-6 {
			t.Fatalf("window leaked gameweek %d", point.Gameweek)
		}
	}

	if _, err := repo.OwnedPerformance(context.Background(), SeedManagerID, manager.WindowAll, stat.KeySaves); err == nil {
		t.Fatal("expected an error for an unsupported stat key")
	}
}

func TestManagerRepositoryTransferImpacts(t *testing.T) {
	repo := NewManagerRepository(SeedManagerData(), SeedLeaguePicks(), SeedPlayerStats(), SeedGameweeks())

	impacts, err := repo.TransferImpacts(context.Background(), SeedManagerID, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("TransferImpacts: %v", err)
	}
	if len(impacts) != 1 {
		t.Fatalf("got %d impacts, want 1", len(impacts))
	}
	if impacts[0].PlayerInID != playerIsak || impacts[0].Net() != 10 {
		t.Fatalf("impact = in %d net %d, want in %d net 10", impacts[0].PlayerInID, impacts[0].Net(), playerIsak)
	}
}

func TestFeedRepositoryListByGameweek(t *testing.T) {
	repo := NewFeedRepository(SeedFeedEvents())

	events, err := repo.ListByGameweek(context.Background(), SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("ListByGameweek: %v", err)
	}
	if len(events) != 16 {
		t.Fatalf("got %d events, want 16", len(events))
	}
	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		if cur.OccurredAt.After(prev.OccurredAt) {
			t.Fatalf("events out of order at %d: %v after %v", i, cur.OccurredAt, prev.OccurredAt)
		}
		if cur.OccurredAt.Equal(prev.OccurredAt) && cur.ID > prev.ID {
			t.Fatalf("id tiebreak violated at %d: %d after %d", i, cur.ID, prev.ID)
		}
	}
	if events[0].ID != 9016 {
		t.Fatalf("newest event = %d, want 9016", events[0].ID)
	}
	if events[len(events)-1].ID != 9001 {
		t.Fatalf("oldest event = %d, want 9001", events[len(events)-1].ID)
	}
}

func TestLeagueRepositoryTopTransfers(t *testing.T) {
	repo := NewLeagueRepository(SeedLeagueData())

	transfers, err := repo.TopTransfers(context.Background(), SeedLeagueID, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("TopTransfers: %v", err)
	}
	if len(transfers.In) != 3 || len(transfers.Out) != 3 {
		t.Fatalf("got %d in, %d out, want 3 each", len(transfers.In), len(transfers.Out))
	}
	if transfers.In[0].PlayerID != playerIsak || transfers.In[0].Count != 3 {
		t.Fatalf("top transfer in = player %d count %d", transfers.In[0].PlayerID, transfers.In[0].Count)
	}
	if transfers.Out[0].PlayerID != playerWatkins {
		t.Fatalf("top transfer out = player %d, want %d", transfers.Out[0].PlayerID, playerWatkins)
	}

	other, err := repo.TopTransfers(context.Background(), 1, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("TopTransfers for unknown league: %v", err)
	}
	if len(other.In) != 0 || len(other.Out) != 0 {
		t.Fatal("unknown league should have no transfers")
	}
}

func TestChipRepositoryLeaguePlays(t *testing.T) {
	repo := NewChipRepository(SeedManagerChips(), SeedLeagueMembers(), SeedManagerNames())

	plays, err := repo.LeaguePlays(context.Background(), SeedLeagueID, SeedCurrentGameweek)
	if err != nil {
		t.Fatalf("LeaguePlays: %v", err)
	}
	if len(plays) != 1 {
		t.Fatalf("got %d plays, want 1", len(plays))
	}
	if plays[0].ManagerID != 6161 || plays[0].Name != "bboost" {
		t.Fatalf("play = manager %d chip %s, want 6161 bboost", plays[0].ManagerID, plays[0].Name)
	}

	mine, err := repo.ManagerPlays(context.Background(), SeedManagerID)
	if err != nil {
		t.Fatalf("ManagerPlays: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("got %d plays, want 3", len(mine))
	}
	if mine[0].Gameweek != 8 || mine[2].Gameweek != 21 {
		t.Fatalf("plays not ordered by gameweek: %d .. %d", mine[0].Gameweek, mine[2].Gameweek)
	}
}
