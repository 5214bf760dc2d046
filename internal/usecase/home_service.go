package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sourcegraph/conc"

	"github.com/fplpulse/fplpulse/internal/domain/chip"
	"github.com/fplpulse/fplpulse/internal/domain/league"
	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/view"
)

// HomeParams identifies the viewer. LeagueID zero skips the league
// block; Narrow applies the small-viewport card rearrangement.
type HomeParams struct {
	ManagerID int64
	LeagueID  int64
	Narrow    bool
}

// ChipColumnUsage pairs a chip column with the gameweek it was played
// in, nil while unused.
type ChipColumnUsage struct {
	view.ChipColumn
	Gameweek *int `json:"gameweek,omitempty"`
}

// RankPoint is one gameweek of the overall-rank series.
type RankPoint struct {
	Gameweek    int    `json:"gameweek"`
	OverallRank int64  `json:"overall_rank"`
	ActiveChip  string `json:"active_chip,omitempty"`
}

// ValuePoint is one gameweek of the team-value series.
type ValuePoint struct {
	Gameweek  int     `json:"gameweek"`
	TeamValue float64 `json:"team_value"`
}

// StandingRow is one row of the mini-league table.
type StandingRow struct {
	Rank           int    `json:"rank"`
	Movement       int    `json:"movement"`
	ManagerID      int64  `json:"manager_id"`
	ManagerName    string `json:"manager_name"`
	TeamName       string `json:"team_name"`
	TotalPoints    int    `json:"total_points"`
	GameweekPoints int    `json:"gameweek_points"`
}

// TransferRow is one player on a league transfer board.
type TransferRow struct {
	PlayerID int64  `json:"player_id"`
	WebName  string `json:"web_name"`
	Count    int    `json:"count"`
}

// TransferBoard carries both directions of a gameweek's league
// transfers.
type TransferBoard struct {
	In  []TransferRow `json:"in"`
	Out []TransferRow `json:"out"`
}

// CaptainRow is one captained player with its league pick count.
type CaptainRow struct {
	PlayerID int64  `json:"player_id"`
	WebName  string `json:"web_name"`
	Count    int    `json:"count"`
}

// LeagueChipRow is one chip activation inside the league this gameweek.
type LeagueChipRow struct {
	ManagerID   int64  `json:"manager_id"`
	ManagerName string `json:"manager_name"`
	Chip        string `json:"chip"`
	Gameweek    int    `json:"gameweek"`
}

// LeagueValuePoint is one member's team value at a gameweek.
type LeagueValuePoint struct {
	ManagerID   int64   `json:"manager_id"`
	ManagerName string  `json:"manager_name"`
	Gameweek    int     `json:"gameweek"`
	TeamValue   float64 `json:"team_value"`
}

// LeagueBlock is the mini-league panel of the home page.
type LeagueBlock struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Standings    []StandingRow      `json:"standings"`
	ValueHistory []LeagueValuePoint `json:"value_history"`
	TopTransfers TransferBoard      `json:"top_transfers"`
	Captains     []CaptainRow       `json:"captains"`
	ChipPlays    []LeagueChipRow    `json:"chip_plays"`
}

// HomeView is the home page payload: the bento cards in display order
// plus the series and panels behind them. Stale marks a page rendered
// from cached data after a backend failure.
type HomeView struct {
	Gameweek     int                   `json:"gameweek"`
	Cards        []view.CardDescriptor `json:"cards"`
	ChipColumns  []ChipColumnUsage     `json:"chip_columns"`
	RankHistory  []RankPoint           `json:"rank_history"`
	ValueHistory []ValuePoint          `json:"value_history"`
	League       *LeagueBlock          `json:"league,omitempty"`
	Stale        bool                  `json:"stale,omitempty"`
}

// cardOrderProvider supplies the persisted card order with the viewport
// rearrangement applied.
type cardOrderProvider interface {
	OrderForViewport(narrow bool) []string
}

type HomeService struct {
	gameweeks GameweekQueries
	managers  ManagerQueries
	chips     ChipQueries
	picks     PickQueries
	players   PlayerQueries
	leagues   LeagueQueries
	cards     cardOrderProvider
}

func NewHomeService(
	gameweeks GameweekQueries,
	managers ManagerQueries,
	chips ChipQueries,
	picks PickQueries,
	players PlayerQueries,
	leagues LeagueQueries,
	cards cardOrderProvider,
) *HomeService {
	return &HomeService{
		gameweeks: gameweeks,
		managers:  managers,
		chips:     chips,
		picks:     picks,
		players:   players,
		leagues:   leagues,
		cards:     cards,
	}
}

// GetHome assembles the home page for one viewer. Queries fan out
// concurrently; a failing query with cached data degrades the page to
// stale instead of failing it.
func (s *HomeService) GetHome(ctx context.Context, p HomeParams) (HomeView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.GetHome")
	defer span.End()

	if p.ManagerID <= 0 {
		return HomeView{}, fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}

	current, found, err := s.gameweeks.Current(ctx)
	if err != nil && !found {
		return HomeView{}, fmt.Errorf("%w: current gameweek: %v", ErrUnavailable, err)
	}
	if !found {
		return HomeView{}, fmt.Errorf("%w: current gameweek", ErrNotFound)
	}
	stale := err != nil
	gw := current.ID

	var (
		summary      manager.Summary
		summaryFound bool
		summaryErr   error

		history    []manager.HistoryPoint
		historyErr error

		values    []manager.ValuePoint
		valuesErr error

		plays    []chip.Play
		playsErr error

		viewerPicks    []pick.Pick
		viewerPicksErr error

		lg    league.League
		lgOK  bool
		lgErr error

		standings    []league.Standing
		standingsErr error

		leagueValues    []league.ValuePoint
		leagueValuesErr error

		transfers    league.TransferSummary
		transfersErr error

		captains    []league.CaptainCount
		captainsErr error

		leaguePlays    []chip.LeaguePlay
		leaguePlaysErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { summary, summaryFound, summaryErr = s.managers.Summary(ctx, p.ManagerID, gw) })
	wg.Go(func() { history, historyErr = s.managers.History(ctx, p.ManagerID) })
	wg.Go(func() { values, valuesErr = s.managers.TeamValueHistory(ctx, p.ManagerID) })
	wg.Go(func() { plays, playsErr = s.chips.ManagerPlays(ctx, p.ManagerID) })
	wg.Go(func() { viewerPicks, viewerPicksErr = s.picks.ManagerPicks(ctx, p.ManagerID, gw) })
	if p.LeagueID > 0 {
		wg.Go(func() { lg, lgOK, lgErr = s.leagues.GetByID(ctx, p.LeagueID) })
		wg.Go(func() { standings, standingsErr = s.leagues.Standings(ctx, p.LeagueID, gw) })
		wg.Go(func() { leagueValues, leagueValuesErr = s.leagues.TeamValueHistory(ctx, p.LeagueID) })
		wg.Go(func() { transfers, transfersErr = s.leagues.TopTransfers(ctx, p.LeagueID, gw) })
		wg.Go(func() { captains, captainsErr = s.leagues.CaptainCounts(ctx, p.LeagueID, gw) })
		wg.Go(func() { leaguePlays, leaguePlaysErr = s.chips.LeaguePlays(ctx, p.LeagueID, gw) })
	}
	wg.Wait()

	if summaryErr != nil && !summaryFound {
		return HomeView{}, fmt.Errorf("%w: manager summary: %v", ErrUnavailable, summaryErr)
	}
	stale = stale || anyErr(summaryErr, historyErr, valuesErr, playsErr, viewerPicksErr,
		lgErr, standingsErr, leagueValuesErr, transfersErr, captainsErr, leaguePlaysErr)

	usage := chip.UsageFromPlays(plays)
	captainName, captainMult, err := s.resolveCaptain(ctx, viewerPicks, usage, gw)
	if err != nil {
		stale = true
	}

	out := HomeView{
		Gameweek:     gw,
		ChipColumns:  chipColumnUsage(usage),
		RankHistory:  rankHistory(history),
		ValueHistory: valueHistory(values),
		Stale:        stale,
	}

	var viewerMovement *int
	if p.LeagueID > 0 && lgOK {
		block := leagueBlock(lg, standings, leagueValues, transfers, captains, leaguePlays)
		out.League = block
		for _, row := range block.Standings {
			if row.ManagerID == p.ManagerID {
				m := row.Movement
				viewerMovement = &m
				break
			}
		}
	}

	out.Cards = s.buildCards(cardInputs{
		order:          s.cards.OrderForViewport(p.Narrow),
		summary:        summary,
		summaryFound:   summaryFound,
		history:        history,
		gameweek:       gw,
		chipsUsed:      len(usage),
		captainName:    captainName,
		captainMult:    captainMult,
		leagueName:     lg.Name,
		viewerMovement: viewerMovement,
	})

	return out, nil
}

// resolveCaptain names the viewer's current captain and its effective
// multiplier. No captain in the squad yields empty values, not an error.
func (s *HomeService) resolveCaptain(ctx context.Context, picks []pick.Pick, usage chip.Usage, gw int) (string, int, error) {
	for _, pk := range picks {
		if !pk.IsCaptain {
			continue
		}
		mult := pk.EffectiveMultiplier(usage.TripleCaptainActiveAt(gw))
		players, err := s.players.GetByIDs(ctx, []int64{pk.PlayerID})
		if err != nil && len(players) == 0 {
			return "", mult, err
		}
		if len(players) == 0 {
			return "", mult, nil
		}
		return players[0].WebName, mult, err
	}
	return "", 0, nil
}

type cardInputs struct {
	order          []string
	summary        manager.Summary
	summaryFound   bool
	history        []manager.HistoryPoint
	gameweek       int
	chipsUsed      int
	captainName    string
	captainMult    int
	leagueName     string
	viewerMovement *int
}

func (s *HomeService) buildCards(in cardInputs) []view.CardDescriptor {
	cards := make([]view.CardDescriptor, 0, len(in.order))
	for _, id := range in.order {
		card, ok := view.CardTemplate(id)
		if !ok {
			continue
		}
		s.fillCard(&card, in)
		cards = append(cards, card)
	}
	return cards
}

func (s *HomeService) fillCard(card *view.CardDescriptor, in cardInputs) {
	if !in.summaryFound {
		switch card.ID {
		case view.CardChips, view.CardSettings:
		default:
			card.Value = view.EmDash
		}
		return
	}

	sum := in.summary
	switch card.ID {
	case view.CardOverallRank:
		card.Value = view.FormatInt64(sum.OverallRank)
		card.Change = overallRankChange(in.history, sum.OverallRank, in.gameweek)
	case view.CardGWRank:
		card.Value = view.FormatNumberTwoDecimals(int64PtrToFloat(sum.GameweekRank))
	case view.CardTotalPoints:
		card.Value = strconv.Itoa(sum.TotalPoints)
	case view.CardGWPoints:
		card.Value = strconv.Itoa(sum.GameweekPoints)
	case view.CardTeamValue:
		card.Value = view.FormatPrice(&sum.TeamValue)
		card.Subtext = "Bank " + view.FormatPrice(&sum.BankValue)
	case view.CardChips:
		card.Subtext = fmt.Sprintf("%d of 8 used", in.chipsUsed)
	case view.CardTransfers:
		card.Value = strconv.Itoa(sum.TransfersMade)
		card.Subtext = fmt.Sprintf("%d free", sum.FreeTransfers)
	case view.CardLeagueRank:
		if sum.LeagueRank != nil {
			card.Value = "#" + strconv.Itoa(*sum.LeagueRank)
		} else {
			card.Value = view.EmDash
		}
		card.Subtext = in.leagueName
		card.Change = in.viewerMovement
	case view.CardCaptain:
		if in.captainName == "" {
			card.Value = view.EmDash
			return
		}
		card.Value = in.captainName
		card.Subtext = fmt.Sprintf("×%d", in.captainMult)
	}
}

// overallRankChange compares the previous gameweek's rank with the
// current one; positive means the viewer climbed.
func overallRankChange(history []manager.HistoryPoint, current *int64, gw int) *int {
	if current == nil {
		return nil
	}
	for _, point := range history {
		if point.Gameweek == gw-1 {
			change := int(point.OverallRank - *current)
			return &change
		}
	}
	return nil
}

func chipColumnUsage(usage chip.Usage) []ChipColumnUsage {
	columns := view.ChipColumns()
	out := make([]ChipColumnUsage, 0, len(columns))
	for _, col := range columns {
		entry := ChipColumnUsage{ChipColumn: col}
		if gw, ok := usage[col.Key]; ok {
			used := gw
			entry.Gameweek = &used
		}
		out = append(out, entry)
	}
	return out
}

func rankHistory(history []manager.HistoryPoint) []RankPoint {
	out := make([]RankPoint, 0, len(history))
	for _, point := range history {
		out = append(out, RankPoint{
			Gameweek:    point.Gameweek,
			OverallRank: point.OverallRank,
			ActiveChip:  point.ActiveChip,
		})
	}
	return out
}

func valueHistory(values []manager.ValuePoint) []ValuePoint {
	out := make([]ValuePoint, 0, len(values))
	for _, point := range values {
		out = append(out, ValuePoint{Gameweek: point.Gameweek, TeamValue: point.TeamValue})
	}
	return out
}

func leagueBlock(
	lg league.League,
	standings []league.Standing,
	values []league.ValuePoint,
	transfers league.TransferSummary,
	captains []league.CaptainCount,
	plays []chip.LeaguePlay,
) *LeagueBlock {
	block := &LeagueBlock{ID: lg.ID, Name: lg.Name}

	block.Standings = make([]StandingRow, 0, len(standings))
	for _, row := range standings {
		block.Standings = append(block.Standings, StandingRow{
			Rank:           row.Rank,
			Movement:       row.Movement(),
			ManagerID:      row.ManagerID,
			ManagerName:    row.ManagerName,
			TeamName:       row.TeamName,
			TotalPoints:    row.TotalPoints,
			GameweekPoints: row.GameweekPoints,
		})
	}

	block.ValueHistory = make([]LeagueValuePoint, 0, len(values))
	for _, point := range values {
		block.ValueHistory = append(block.ValueHistory, LeagueValuePoint{
			ManagerID:   point.ManagerID,
			ManagerName: point.ManagerName,
			Gameweek:    point.Gameweek,
			TeamValue:   point.TeamValue,
		})
	}

	block.TopTransfers = TransferBoard{
		In:  transferRows(transfers.In),
		Out: transferRows(transfers.Out),
	}

	block.Captains = make([]CaptainRow, 0, len(captains))
	for _, row := range captains {
		block.Captains = append(block.Captains, CaptainRow{
			PlayerID: row.PlayerID,
			WebName:  row.WebName,
			Count:    row.Count,
		})
	}

	block.ChipPlays = make([]LeagueChipRow, 0, len(plays))
	for _, play := range plays {
		block.ChipPlays = append(block.ChipPlays, LeagueChipRow{
			ManagerID:   play.ManagerID,
			ManagerName: play.ManagerName,
			Chip:        chip.NormalizeName(play.Name),
			Gameweek:    play.Gameweek,
		})
	}

	return block
}

func transferRows(counts []league.TransferCount) []TransferRow {
	out := make([]TransferRow, 0, len(counts))
	for _, row := range counts {
		out = append(out, TransferRow{PlayerID: row.PlayerID, WebName: row.WebName, Count: row.Count})
	}
	return out
}

func anyErr(errs ...error) bool {
	for _, err := range errs {
		if err != nil {
			return true
		}
	}
	return false
}

func int64PtrToFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
