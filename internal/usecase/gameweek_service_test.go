package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/stat"
	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/memory"
)

func newGameweekService(q *testQueries) *GameweekService {
	return NewGameweekService(q.gameweeks, q.fixtures, q.stats, q.teams, q.players, q.picks)
}

func TestGetMatchesStatuses(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetMatches(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if out.Gameweek.ID != memory.SeedCurrentGameweek || !out.Gameweek.IsCurrent {
		t.Fatalf("gameweek meta = %+v", out.Gameweek)
	}
	if len(out.Cards) != 4 {
		t.Fatalf("cards = %d, want 4", len(out.Cards))
	}

	want := []struct {
		fixtureID int64
		status    fixture.Status
	}{
		{2201, fixture.StatusFinal},
		{2202, fixture.StatusProvisional},
		{2203, fixture.StatusLive},
		{2204, fixture.StatusScheduled},
	}
	for i, w := range want {
		card := out.Cards[i]
		if card.FixtureID != w.fixtureID || card.Status != w.status {
			t.Errorf("cards[%d] = fixture %d status %s, want %d %s",
				i, card.FixtureID, card.Status, w.fixtureID, w.status)
		}
	}
	if out.Cards[3].Dot != nil {
		t.Error("scheduled card carries a status dot")
	}
	if out.Cards[2].Dot == nil || out.Cards[2].Dot.Label != "Live" {
		t.Errorf("live card dot = %+v", out.Cards[2].Dot)
	}
}

func TestGetMatchesTopStats(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetMatches(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if len(out.TopStats) != len(stat.Dictionary()) {
		t.Fatalf("boards = %d, want %d", len(out.TopStats), len(stat.Dictionary()))
	}

	points := out.TopStats[0]
	if points.Key != stat.KeyPoints {
		t.Fatalf("first board key = %s, want %s", points.Key, stat.KeyPoints)
	}
	if len(points.Entries) == 0 || len(points.Entries) > 10 {
		t.Fatalf("points entries = %d", len(points.Entries))
	}
	// Haaland's confirmed 13 ties Isak's provisional 10+3; the name
	// breaks the tie.
	first := points.Entries[0]
	if first.WebName != "Haaland" || first.Value != 13 {
		t.Errorf("top points entry = %+v", first)
	}
}

func TestGetMatchesSimulate(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetMatches(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID, Simulate: "status"})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	want := []fixture.Status{fixture.StatusScheduled, fixture.StatusLive, fixture.StatusProvisional, fixture.StatusFinal}
	for i, status := range want {
		if out.Cards[i].Status != status {
			t.Errorf("simulated cards[%d] = %s, want %s", i, out.Cards[i].Status, status)
		}
	}

	if _, err := svc.GetMatches(context.Background(), GameweekParams{Simulate: "maybe"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad simulate err = %v, want ErrInvalidInput", err)
	}
}

func TestGetMatchesHeadToHead(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetMatches(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID, H2H: true})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if !out.H2H {
		t.Fatal("h2h toggle dropped in the second half")
	}
	if len(out.Cards) != 1 || out.Cards[0].FixtureID != 2204 {
		t.Fatalf("h2h cards = %+v, want only the scheduled fixture", out.Cards)
	}

	meeting := out.Cards[0].LastMeeting
	if meeting == nil {
		t.Fatal("scheduled card missing its first-half meeting")
	}
	if meeting.FixtureID != 304 || meeting.Gameweek != 3 {
		t.Fatalf("meeting = %+v", meeting)
	}
	if meeting.Home.ShortName != "AVL" || meeting.Away.ShortName != "BHA" {
		t.Errorf("meeting orientation = %s v %s, want AVL v BHA", meeting.Home.ShortName, meeting.Away.ShortName)
	}
	if meeting.Home.Score == nil || *meeting.Home.Score != 1 || meeting.Away.Score == nil || *meeting.Away.Score != 0 {
		t.Errorf("meeting score = %v-%v", meeting.Home.Score, meeting.Away.Score)
	}
}

func TestGetMatchesHeadToHeadFirstHalf(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetMatches(context.Background(), GameweekParams{Gameweek: 3, ManagerID: memory.SeedManagerID, H2H: true})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if out.H2H {
		t.Fatal("h2h active before the second half")
	}
	if len(out.Cards) != 4 {
		t.Fatalf("first-half cards = %d, want 4", len(out.Cards))
	}
}

func TestGetMatchesExpandedFixture(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetMatches(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID, FixtureID: 2201})
	if err != nil {
		t.Fatalf("GetMatches: %v", err)
	}
	if out.Expanded == nil || out.Expanded.FixtureID != 2201 {
		t.Fatalf("expanded = %+v", out.Expanded)
	}

	rows := out.Expanded.Rows
	if len(rows) != 4 {
		t.Fatalf("expanded rows = %d, want 4", len(rows))
	}
	wantNames := []string{"Haaland", "Foden", "Colwill", "Palmer"}
	for i, name := range wantNames {
		if rows[i].WebName != name {
			t.Fatalf("rows[%d] = %s, want %s", i, rows[i].WebName, name)
		}
	}
	if rows[0].Points != 13 || !rows[0].Owned {
		t.Errorf("Haaland line = %+v", rows[0])
	}
}

func TestGetMatchesUnknownFixture(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	_, err := svc.GetMatches(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID, FixtureID: 999})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetMatchesGameweekOutOfRange(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	_, err := svc.GetMatches(context.Background(), GameweekParams{Gameweek: 39})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetBonusAwards(t *testing.T) {
	svc := newGameweekService(newTestQueries(t))

	out, err := svc.GetBonus(context.Background(), GameweekParams{ManagerID: memory.SeedManagerID})
	if err != nil {
		t.Fatalf("GetBonus: %v", err)
	}
	if len(out.Fixtures) != 3 {
		t.Fatalf("fixtures with bonus = %d, want 3", len(out.Fixtures))
	}

	byFixture := make(map[int64]FixtureBonus, len(out.Fixtures))
	for _, f := range out.Fixtures {
		byFixture[f.FixtureID] = f
	}

	// Finished fixture: confirmed awards only.
	final := byFixture[2201]
	if final.Status != fixture.StatusFinal {
		t.Errorf("fixture 2201 status = %s", final.Status)
	}
	if len(final.Awards) != 2 {
		t.Fatalf("fixture 2201 awards = %d, want 2", len(final.Awards))
	}
	if final.Awards[0].WebName != "Haaland" || final.Awards[0].Bonus != 3 || !final.Awards[0].Confirmed {
		t.Errorf("fixture 2201 top award = %+v", final.Awards[0])
	}

	// Provisional fixture: BPS order projected onto 3-2-1.
	provisional := byFixture[2202]
	if len(provisional.Awards) != 3 {
		t.Fatalf("fixture 2202 awards = %d, want 3", len(provisional.Awards))
	}
	wantNames := []string{"Isak", "Gordon", "Son"}
	for i, name := range wantNames {
		award := provisional.Awards[i]
		if award.WebName != name || award.Bonus != 3-i || award.Confirmed {
			t.Errorf("fixture 2202 awards[%d] = %+v, want provisional %s with %d", i, award, name, 3-i)
		}
	}

	// Live fixture: running projection from in-play BPS.
	live := byFixture[2203]
	if len(live.Awards) != 3 {
		t.Fatalf("fixture 2203 awards = %d, want 3", len(live.Awards))
	}
	if live.Awards[0].WebName != "Saka" || live.Awards[0].BPS != 45 {
		t.Errorf("fixture 2203 top award = %+v", live.Awards[0])
	}
}
