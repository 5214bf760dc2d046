package memory

import (
	"time"

	"github.com/fplpulse/fplpulse/internal/domain/chip"
	"github.com/fplpulse/fplpulse/internal/domain/feed"
	"github.com/fplpulse/fplpulse/internal/domain/fixture"
	"github.com/fplpulse/fplpulse/internal/domain/gameweek"
	"github.com/fplpulse/fplpulse/internal/domain/league"
	"github.com/fplpulse/fplpulse/internal/domain/manager"
	"github.com/fplpulse/fplpulse/internal/domain/pick"
	"github.com/fplpulse/fplpulse/internal/domain/player"
	"github.com/fplpulse/fplpulse/internal/domain/playerstats"
	"github.com/fplpulse/fplpulse/internal/domain/team"
)

// The seed dataset is one mid-January snapshot of a season: gameweek 22 in
// progress with one finished, one provisional, one live and one scheduled
// match, plus the finished first-half reverse meetings from gameweek 3.
const (
	SeedManagerID       int64 = 4242
	SeedLeagueID        int64 = 9876
	SeedCurrentGameweek       = 22
)

const (
	teamArsenal    int64 = 1
	teamAstonVilla int64 = 2
	teamBrighton   int64 = 3
	teamChelsea    int64 = 4
	teamLiverpool  int64 = 5
	teamManCity    int64 = 6
	teamNewcastle  int64 = 7
	teamSpurs      int64 = 8
)

const (
	playerRaya       int64 = 101
	playerSaka       int64 = 102
	playerWatkins    int64 = 103
	playerKonsa      int64 = 104
	playerMitoma     int64 = 105
	playerVanHecke   int64 = 106
	playerPalmer     int64 = 107
	playerColwill    int64 = 108
	playerSalah      int64 = 109
	playerVanDijk    int64 = 110
	playerHaaland    int64 = 111
	playerFoden      int64 = 112
	playerIsak       int64 = 113
	playerGordon     int64 = 114
	playerSon        int64 = 115
	playerRomero     int64 = 116
	playerVerbruggen int64 = 117
)

func SeedGameweeks() []gameweek.Gameweek {
	return []gameweek.Gameweek{
		{ID: 20, IsCurrent: false, DataChecked: true, DeadlineAt: time.Date(2026, 1, 10, 11, 0, 0, 0, time.UTC)},
		{ID: 21, IsCurrent: false, DataChecked: true, DeadlineAt: time.Date(2026, 1, 17, 11, 0, 0, 0, time.UTC)},
		{ID: 22, IsCurrent: true, DataChecked: false, DeadlineAt: time.Date(2026, 1, 23, 18, 30, 0, 0, time.UTC)},
	}
}

func SeedRefreshEvents() []gameweek.RefreshEvent {
	return []gameweek.RefreshEvent{
		{Kind: gameweek.RefreshSlow, OccurredAt: time.Date(2026, 1, 24, 13, 30, 0, 0, time.UTC)},
		{Kind: gameweek.RefreshFast, OccurredAt: time.Date(2026, 1, 24, 13, 58, 30, 0, time.UTC)},
		{Kind: gameweek.RefreshSlow, OccurredAt: time.Date(2026, 1, 24, 13, 45, 0, 0, time.UTC)},
		{Kind: gameweek.RefreshFast, OccurredAt: time.Date(2026, 1, 24, 13, 59, 30, 0, time.UTC)},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: teamArsenal, Name: "Arsenal", ShortName: "ARS"},
		{ID: teamAstonVilla, Name: "Aston Villa", ShortName: "AVL"},
		{ID: teamBrighton, Name: "Brighton", ShortName: "BHA"},
		{ID: teamChelsea, Name: "Chelsea", ShortName: "CHE"},
		{ID: teamLiverpool, Name: "Liverpool", ShortName: "LIV"},
		{ID: teamManCity, Name: "Man City", ShortName: "MCI"},
		{ID: teamNewcastle, Name: "Newcastle", ShortName: "NEW"},
		{ID: teamSpurs, Name: "Spurs", ShortName: "TOT"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: playerRaya, WebName: "Raya", Position: player.PositionGoalkeeper, TeamID: teamArsenal, CostTenths: 55, SelectedByPercent: 24.1},
		{ID: playerSaka, WebName: "Saka", Position: player.PositionMidfielder, TeamID: teamArsenal, CostTenths: 102, SelectedByPercent: 41.7},
		{ID: playerWatkins, WebName: "Watkins", Position: player.PositionForward, TeamID: teamAstonVilla, CostTenths: 88, SelectedByPercent: 17.9},
		{ID: playerKonsa, WebName: "Konsa", Position: player.PositionDefender, TeamID: teamAstonVilla, CostTenths: 45, SelectedByPercent: 6.2},
		{ID: playerMitoma, WebName: "Mitoma", Position: player.PositionMidfielder, TeamID: teamBrighton, CostTenths: 65, SelectedByPercent: 9.4},
		{ID: playerVanHecke, WebName: "van Hecke", Position: player.PositionDefender, TeamID: teamBrighton, CostTenths: 45, SelectedByPercent: 4.8},
		{ID: playerPalmer, WebName: "Palmer", Position: player.PositionMidfielder, TeamID: teamChelsea, CostTenths: 105, SelectedByPercent: 38.3},
		{ID: playerColwill, WebName: "Colwill", Position: player.PositionDefender, TeamID: teamChelsea, CostTenths: 45, SelectedByPercent: 7.5},
		{ID: playerSalah, WebName: "M.Salah", Position: player.PositionMidfielder, TeamID: teamLiverpool, CostTenths: 132, SelectedByPercent: 55.3},
		{ID: playerVanDijk, WebName: "van Dijk", Position: player.PositionDefender, TeamID: teamLiverpool, CostTenths: 60, SelectedByPercent: 22.6},
		{ID: playerHaaland, WebName: "Haaland", Position: player.PositionForward, TeamID: teamManCity, CostTenths: 151, SelectedByPercent: 68.1},
		{ID: playerFoden, WebName: "Foden", Position: player.PositionMidfielder, TeamID: teamManCity, CostTenths: 92, SelectedByPercent: 19.8},
		{ID: playerIsak, WebName: "Isak", Position: player.PositionForward, TeamID: teamNewcastle, CostTenths: 94, SelectedByPercent: 33.0},
		{ID: playerGordon, WebName: "Gordon", Position: player.PositionMidfielder, TeamID: teamNewcastle, CostTenths: 75, SelectedByPercent: 14.2},
		{ID: playerSon, WebName: "Son", Position: player.PositionMidfielder, TeamID: teamSpurs, CostTenths: 98, SelectedByPercent: 21.5},
		{ID: playerRomero, WebName: "Romero", Position: player.PositionDefender, TeamID: teamSpurs, CostTenths: 50, SelectedByPercent: 8.8},
		{ID: playerVerbruggen, WebName: "Verbruggen", Position: player.PositionGoalkeeper, TeamID: teamBrighton, CostTenths: 45, SelectedByPercent: 5.1},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		// First-half reverse meetings of the gameweek 22 pairings.
		{
			ID: 301, Gameweek: 3,
			HomeTeamID: teamLiverpool, AwayTeamID: teamArsenal,
			KickoffAt: time.Date(2025, 8, 30, 15, 0, 0, 0, time.UTC),
			Started:   true, Finished: true,
			HomeScore: intPtr(2), AwayScore: intPtr(1),
			Stadium: "Anfield",
		},
		{
			ID: 302, Gameweek: 3,
			HomeTeamID: teamChelsea, AwayTeamID: teamManCity,
			KickoffAt: time.Date(2025, 8, 30, 17, 30, 0, 0, time.UTC),
			Started:   true, Finished: true,
			HomeScore: intPtr(1), AwayScore: intPtr(1),
			Stadium: "Stamford Bridge",
		},
		{
			ID: 303, Gameweek: 3,
			HomeTeamID: teamNewcastle, AwayTeamID: teamSpurs,
			KickoffAt: time.Date(2025, 8, 31, 14, 0, 0, 0, time.UTC),
			Started:   true, Finished: true,
			HomeScore: intPtr(0), AwayScore: intPtr(2),
			Stadium: "St James' Park",
		},
		{
			ID: 304, Gameweek: 3,
			HomeTeamID: teamAstonVilla, AwayTeamID: teamBrighton,
			KickoffAt: time.Date(2025, 8, 31, 16, 30, 0, 0, time.UTC),
			Started:   true, Finished: true,
			HomeScore: intPtr(1), AwayScore: intPtr(0),
			Stadium: "Villa Park",
		},
		// Gameweek 22: final, provisional, live, scheduled.
		{
			ID: 2201, Gameweek: 22,
			HomeTeamID: teamManCity, AwayTeamID: teamChelsea,
			KickoffAt: time.Date(2026, 1, 23, 20, 0, 0, 0, time.UTC),
			Started:   true, Finished: true,
			HomeScore: intPtr(2), AwayScore: intPtr(0),
			Stadium: "Etihad Stadium",
		},
		{
			ID: 2202, Gameweek: 22,
			HomeTeamID: teamSpurs, AwayTeamID: teamNewcastle,
			KickoffAt: time.Date(2026, 1, 24, 10, 0, 0, 0, time.UTC),
			Started:   true, FinishedProvisional: true,
			HomeScore: intPtr(2), AwayScore: intPtr(2),
			Stadium: "Tottenham Hotspur Stadium",
		},
		{
			ID: 2203, Gameweek: 22,
			HomeTeamID: teamArsenal, AwayTeamID: teamLiverpool,
			KickoffAt: time.Date(2026, 1, 24, 12, 30, 0, 0, time.UTC),
			Started:   true,
			HomeScore: intPtr(1), AwayScore: intPtr(1),
			Stadium: "Emirates Stadium",
		},
		{
			ID: 2204, Gameweek: 22,
			HomeTeamID: teamBrighton, AwayTeamID: teamAstonVilla,
			KickoffAt: time.Date(2026, 1, 25, 14, 0, 0, 0, time.UTC),
			Stadium:   "Amex Stadium",
		},
	}
}

func SeedPlayerStats() []playerstats.Row {
	return []playerstats.Row{
		// Gameweek 3 reverse meetings, all confirmed.
		{PlayerID: playerSalah, FixtureID: 301, Gameweek: 3, TeamID: teamLiverpool, Minutes: 90, TotalPoints: 13, Goals: 1, Assists: 1, BPS: 68, Bonus: 3, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 3, ExpectedGoals: 0.9, ExpectedAssists: 0.4, ExpectedInvolvements: 1.3, ExpectedConceded: 1.1, MatchFinished: true, Started: true},
		{PlayerID: playerVanDijk, FixtureID: 301, Gameweek: 3, TeamID: teamLiverpool, Minutes: 90, TotalPoints: 2, BPS: 18, BonusStatus: playerstats.BonusConfirmed, DefensiveContribution: 9, ExpectedConceded: 1.1, MatchFinished: true, Started: true},
		{PlayerID: playerSaka, FixtureID: 301, Gameweek: 3, TeamID: teamArsenal, Minutes: 90, TotalPoints: 8, Goals: 1, BPS: 40, Bonus: 1, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 1, ExpectedGoals: 0.6, ExpectedInvolvements: 0.8, ExpectedConceded: 1.8, MatchFinished: true, Started: true},
		{PlayerID: playerRaya, FixtureID: 301, Gameweek: 3, TeamID: teamArsenal, Minutes: 90, TotalPoints: 3, Saves: 4, BPS: 19, BonusStatus: playerstats.BonusConfirmed, ExpectedConceded: 1.8, MatchFinished: true, Started: true},
		{PlayerID: playerPalmer, FixtureID: 302, Gameweek: 3, TeamID: teamChelsea, Minutes: 90, TotalPoints: 9, Goals: 1, BPS: 52, Bonus: 2, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 2, ExpectedGoals: 0.7, ExpectedInvolvements: 0.9, ExpectedConceded: 1.2, MatchFinished: true, Started: true},
		{PlayerID: playerHaaland, FixtureID: 302, Gameweek: 3, TeamID: teamManCity, Minutes: 90, TotalPoints: 7, Goals: 1, BPS: 44, Bonus: 1, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 1, ExpectedGoals: 1.1, ExpectedInvolvements: 1.2, ExpectedConceded: 1.0, MatchFinished: true, Started: true},
		{PlayerID: playerFoden, FixtureID: 302, Gameweek: 3, TeamID: teamManCity, Minutes: 90, TotalPoints: 2, BPS: 15, BonusStatus: playerstats.BonusConfirmed, ExpectedConceded: 1.0, MatchFinished: true, Started: true},
		{PlayerID: playerColwill, FixtureID: 302, Gameweek: 3, TeamID: teamChelsea, Minutes: 90, TotalPoints: 4, BPS: 26, BonusStatus: playerstats.BonusConfirmed, DefensiveContribution: 10, DefconAchieved: true, ExpectedConceded: 1.2, MatchFinished: true, Started: true},
		{PlayerID: playerSon, FixtureID: 303, Gameweek: 3, TeamID: teamSpurs, Minutes: 90, TotalPoints: 16, Goals: 2, CleanSheets: 1, BPS: 71, Bonus: 3, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 3, ExpectedGoals: 1.4, ExpectedInvolvements: 1.6, MatchFinished: true, Started: true},
		{PlayerID: playerRomero, FixtureID: 303, Gameweek: 3, TeamID: teamSpurs, Minutes: 90, TotalPoints: 8, CleanSheets: 1, BPS: 35, BonusStatus: playerstats.BonusConfirmed, DefensiveContribution: 11, DefconAchieved: true, MatchFinished: true, Started: true},
		{PlayerID: playerIsak, FixtureID: 303, Gameweek: 3, TeamID: teamNewcastle, Minutes: 90, TotalPoints: 2, BPS: 8, BonusStatus: playerstats.BonusConfirmed, ExpectedGoals: 0.5, ExpectedInvolvements: 0.5, ExpectedConceded: 2.2, MatchFinished: true, Started: true},
		{PlayerID: playerGordon, FixtureID: 303, Gameweek: 3, TeamID: teamNewcastle, Minutes: 78, TotalPoints: 2, BPS: 10, BonusStatus: playerstats.BonusConfirmed, ExpectedConceded: 2.2, MatchFinished: true, Started: true},
		{PlayerID: playerWatkins, FixtureID: 304, Gameweek: 3, TeamID: teamAstonVilla, Minutes: 90, TotalPoints: 9, Goals: 1, CleanSheets: 1, BPS: 50, Bonus: 3, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 3, ExpectedGoals: 0.8, ExpectedInvolvements: 0.9, MatchFinished: true, Started: true},
		{PlayerID: playerKonsa, FixtureID: 304, Gameweek: 3, TeamID: teamAstonVilla, Minutes: 90, TotalPoints: 9, CleanSheets: 1, BPS: 41, Bonus: 1, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 1, DefensiveContribution: 10, DefconAchieved: true, MatchFinished: true, Started: true},
		{PlayerID: playerMitoma, FixtureID: 304, Gameweek: 3, TeamID: teamBrighton, Minutes: 90, TotalPoints: 2, BPS: 14, BonusStatus: playerstats.BonusConfirmed, ExpectedConceded: 1.5, MatchFinished: true, Started: true},
		{PlayerID: playerVanHecke, FixtureID: 304, Gameweek: 3, TeamID: teamBrighton, Minutes: 90, TotalPoints: 4, BPS: 30, BonusStatus: playerstats.BonusConfirmed, DefensiveContribution: 13, DefconAchieved: true, ExpectedConceded: 1.5, MatchFinished: true, Started: true},
		// Gameweek 22: Etihad final.
		{PlayerID: playerHaaland, FixtureID: 2201, Gameweek: 22, TeamID: teamManCity, Minutes: 90, TotalPoints: 13, Goals: 2, CleanSheets: 1, BPS: 62, Bonus: 3, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 3, DefensiveContribution: 2, ExpectedGoals: 1.6, ExpectedInvolvements: 1.8, ExpectedConceded: 0.4, MatchFinished: true, Started: true},
		{PlayerID: playerFoden, FixtureID: 2201, Gameweek: 22, TeamID: teamManCity, Minutes: 90, TotalPoints: 7, Assists: 1, CleanSheets: 1, BPS: 38, Bonus: 1, BonusStatus: playerstats.BonusConfirmed, ProvisionalBonus: 1, ExpectedAssists: 0.5, ExpectedInvolvements: 0.7, ExpectedConceded: 0.4, MatchFinished: true, Started: true},
		{PlayerID: playerPalmer, FixtureID: 2201, Gameweek: 22, TeamID: teamChelsea, Minutes: 85, TotalPoints: 2, BPS: 12, BonusStatus: playerstats.BonusConfirmed, ExpectedGoals: 0.3, ExpectedInvolvements: 0.4, ExpectedConceded: 2.3, MatchFinished: true, Started: true},
		{PlayerID: playerColwill, FixtureID: 2201, Gameweek: 22, TeamID: teamChelsea, Minutes: 90, TotalPoints: 3, BPS: 24, BonusStatus: playerstats.BonusConfirmed, DefensiveContribution: 11, DefconAchieved: true, YellowCards: 1, ExpectedConceded: 2.3, MatchFinished: true, Started: true},
		// Gameweek 22: provisional result in north London.
		{PlayerID: playerSon, FixtureID: 2202, Gameweek: 22, TeamID: teamSpurs, Minutes: 90, TotalPoints: 7, Goals: 1, BPS: 41, BonusStatus: playerstats.BonusProvisional, ProvisionalBonus: 1, ExpectedGoals: 0.7, ExpectedInvolvements: 0.9, ExpectedConceded: 1.9, MatchFinishedProvisional: true, Started: true},
		{PlayerID: playerRomero, FixtureID: 2202, Gameweek: 22, TeamID: teamSpurs, Minutes: 90, TotalPoints: 4, BPS: 30, BonusStatus: playerstats.BonusProvisional, DefensiveContribution: 12, DefconAchieved: true, ExpectedConceded: 1.9, MatchFinishedProvisional: true, Started: true},
		{PlayerID: playerIsak, FixtureID: 2202, Gameweek: 22, TeamID: teamNewcastle, Minutes: 88, TotalPoints: 10, Goals: 2, BPS: 58, BonusStatus: playerstats.BonusProvisional, ProvisionalBonus: 3, ExpectedGoals: 1.2, ExpectedInvolvements: 1.4, ExpectedConceded: 1.6, MatchFinishedProvisional: true, Started: true},
		{PlayerID: playerGordon, FixtureID: 2202, Gameweek: 22, TeamID: teamNewcastle, Minutes: 90, TotalPoints: 5, Assists: 1, BPS: 44, BonusStatus: playerstats.BonusProvisional, ProvisionalBonus: 2, ExpectedAssists: 0.6, ExpectedInvolvements: 0.8, ExpectedConceded: 1.6, MatchFinishedProvisional: true, Started: true},
		// Gameweek 22: live at the Emirates.
		{PlayerID: playerRaya, FixtureID: 2203, Gameweek: 22, TeamID: teamArsenal, Minutes: 70, TotalPoints: 3, Saves: 4, BPS: 22, BonusStatus: playerstats.BonusProvisional, ExpectedConceded: 1.0, Started: true},
		{PlayerID: playerSaka, FixtureID: 2203, Gameweek: 22, TeamID: teamArsenal, Minutes: 70, TotalPoints: 7, Goals: 1, BPS: 45, BonusStatus: playerstats.BonusProvisional, ProvisionalBonus: 3, ExpectedGoals: 0.8, ExpectedInvolvements: 1.0, ExpectedConceded: 1.0, Started: true},
		{PlayerID: playerSalah, FixtureID: 2203, Gameweek: 22, TeamID: teamLiverpool, Minutes: 70, TotalPoints: 7, Goals: 1, BPS: 43, BonusStatus: playerstats.BonusProvisional, ProvisionalBonus: 2, ExpectedGoals: 0.9, ExpectedInvolvements: 1.1, ExpectedConceded: 1.2, Started: true},
		{PlayerID: playerVanDijk, FixtureID: 2203, Gameweek: 22, TeamID: teamLiverpool, Minutes: 70, TotalPoints: 2, BPS: 19, BonusStatus: playerstats.BonusProvisional, DefensiveContribution: 8, ExpectedConceded: 1.2, Started: true},
	}
}

// SeedLeaguePicks returns every squad of the mini league for gameweek 22,
// the viewer's 15 slots plus condensed squads for the other members, and
// the viewer's gameweek 21 squad for ownership streaks.
func SeedLeaguePicks() []pick.Pick {
	picks := []pick.Pick{
		// Viewer, gameweek 22: 3-5-2 with Haaland captain.
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerRaya, Position: 1, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerVanDijk, Position: 2, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerKonsa, Position: 3, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerRomero, Position: 4, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerSaka, Position: 5, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerPalmer, Position: 6, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerSalah, Position: 7, Multiplier: 1, IsViceCaptain: true},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerFoden, Position: 8, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerGordon, Position: 9, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerHaaland, Position: 10, Multiplier: 2, IsCaptain: true},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerIsak, Position: 11, Multiplier: 1},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerVerbruggen, Position: 12, Multiplier: 0},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerMitoma, Position: 13, Multiplier: 0},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerVanHecke, Position: 14, Multiplier: 0},
		{ManagerID: SeedManagerID, Gameweek: 22, PlayerID: playerColwill, Position: 15, Multiplier: 0},
		// Other members, condensed squads.
		{ManagerID: 5151, Gameweek: 22, PlayerID: playerSalah, Position: 1, Multiplier: 1},
		{ManagerID: 5151, Gameweek: 22, PlayerID: playerHaaland, Position: 2, Multiplier: 2, IsCaptain: true},
		{ManagerID: 5151, Gameweek: 22, PlayerID: playerIsak, Position: 3, Multiplier: 1},
		{ManagerID: 5151, Gameweek: 22, PlayerID: playerSaka, Position: 4, Multiplier: 1},
		{ManagerID: 5151, Gameweek: 22, PlayerID: playerVanDijk, Position: 5, Multiplier: 1},
		{ManagerID: 6161, Gameweek: 22, PlayerID: playerSalah, Position: 1, Multiplier: 2, IsCaptain: true},
		{ManagerID: 6161, Gameweek: 22, PlayerID: playerHaaland, Position: 2, Multiplier: 1},
		{ManagerID: 6161, Gameweek: 22, PlayerID: playerPalmer, Position: 3, Multiplier: 1},
		{ManagerID: 6161, Gameweek: 22, PlayerID: playerSon, Position: 4, Multiplier: 1},
		{ManagerID: 6161, Gameweek: 22, PlayerID: playerRomero, Position: 5, Multiplier: 1},
		{ManagerID: 7171, Gameweek: 22, PlayerID: playerPalmer, Position: 1, Multiplier: 2, IsCaptain: true},
		{ManagerID: 7171, Gameweek: 22, PlayerID: playerWatkins, Position: 2, Multiplier: 1},
		{ManagerID: 7171, Gameweek: 22, PlayerID: playerMitoma, Position: 3, Multiplier: 1},
		{ManagerID: 7171, Gameweek: 22, PlayerID: playerGordon, Position: 4, Multiplier: 1},
		{ManagerID: 7171, Gameweek: 22, PlayerID: playerRomero, Position: 5, Multiplier: 1},
	}

	// Viewer, gameweek 21: Watkins before the Isak transfer.
	gw21 := []int64{
		playerRaya, playerVanDijk, playerKonsa, playerRomero, playerSaka,
		playerPalmer, playerSalah, playerFoden, playerGordon, playerHaaland,
		playerWatkins, playerVerbruggen, playerMitoma, playerVanHecke, playerColwill,
	}
	for i, id := range gw21 {
		p := pick.Pick{ManagerID: SeedManagerID, Gameweek: 21, PlayerID: id, Position: i + 1, Multiplier: 1}
		if p.Position >= 12 {
			p.Multiplier = 0
		}
		if id == playerHaaland {
			p.Multiplier = 2
			p.IsCaptain = true
		}
		if id == playerSalah {
			p.IsViceCaptain = true
		}
		picks = append(picks, p)
	}

	return picks
}

func SeedLeagueMembers() map[int64][]int64 {
	return map[int64][]int64{
		SeedLeagueID: {SeedManagerID, 5151, 6161, 7171},
	}
}

func SeedManagerNames() map[int64]string {
	return map[int64]string{
		SeedManagerID: "Alex Winter",
		5151:          "Bobby Liu",
		6161:          "Carmen Ortiz",
		7171:          "Dana Petrov",
	}
}

func SeedManagerChips() map[int64][]chip.Play {
	return map[int64][]chip.Play{
		SeedManagerID: {
			{Name: chip.NameWildcard, Gameweek: 8},
			{Name: chip.NameBenchBoost, Gameweek: 15},
			{Name: chip.NameTripleCaptain, Gameweek: 21},
		},
		5151: {
			{Name: chip.NameWildcard, Gameweek: 12},
		},
		6161: {
			{Name: chip.NameWildcard, Gameweek: 5},
			{Name: chip.NameBenchBoost, Gameweek: 22},
		},
	}
}

func SeedManagerData() ManagerData {
	return ManagerData{
		ManagerID: SeedManagerID,
		Summaries: map[int]manager.Summary{
			21: {
				ID: SeedManagerID, Name: "Alex Winter", TeamName: "Winter Wanderers",
				OverallRank: int64Ptr(163774), GameweekRank: int64Ptr(120455),
				TotalPoints: 1235, GameweekPoints: 62,
				TeamValue: 102.4, BankValue: 0.8,
				TransfersMade: 1, FreeTransfers: 2, LeagueRank: intPtr(1),
			},
			22: {
				ID: SeedManagerID, Name: "Alex Winter", TeamName: "Winter Wanderers",
				OverallRank: int64Ptr(152431), GameweekRank: int64Ptr(88012),
				TotalPoints: 1289, GameweekPoints: 54,
				TeamValue: 102.7, BankValue: 1.3,
				TransfersMade: 1, FreeTransfers: 1, LeagueRank: intPtr(2),
			},
		},
		History: []manager.HistoryPoint{
			{ManagerID: SeedManagerID, Gameweek: 1, OverallRank: 950123},
			{ManagerID: SeedManagerID, Gameweek: 5, OverallRank: 620450},
			{ManagerID: SeedManagerID, Gameweek: 8, OverallRank: 540210, ActiveChip: chip.NameWildcard},
			{ManagerID: SeedManagerID, Gameweek: 10, OverallRank: 410980},
			{ManagerID: SeedManagerID, Gameweek: 15, OverallRank: 280340, ActiveChip: chip.NameBenchBoost},
			{ManagerID: SeedManagerID, Gameweek: 19, OverallRank: 210340},
			{ManagerID: SeedManagerID, Gameweek: 20, OverallRank: 189652},
			{ManagerID: SeedManagerID, Gameweek: 21, OverallRank: 163774, ActiveChip: chip.NameTripleCaptain},
			{ManagerID: SeedManagerID, Gameweek: 22, OverallRank: 152431},
		},
		Values: []manager.ValuePoint{
			{ManagerID: SeedManagerID, Gameweek: 19, TeamValue: 101.8},
			{ManagerID: SeedManagerID, Gameweek: 20, TeamValue: 102.1},
			{ManagerID: SeedManagerID, Gameweek: 21, TeamValue: 102.4},
			{ManagerID: SeedManagerID, Gameweek: 22, TeamValue: 102.7},
		},
		Transfers: []manager.TransferImpact{
			{ManagerID: SeedManagerID, Gameweek: 21, PlayerInID: playerPalmer, PlayerOutID: playerSon, PlayerInPoints: 2, PlayerOutPoints: 7, HitCost: 4},
			{ManagerID: SeedManagerID, Gameweek: 22, PlayerInID: playerIsak, PlayerOutID: playerWatkins, PlayerInPoints: 10, PlayerOutPoints: 0, HitCost: 0},
		},
	}
}

func SeedLeagueData() LeagueData {
	return LeagueData{
		League: league.League{ID: SeedLeagueID, Name: "Kickoff Crew"},
		Standings: []league.Standing{
			{ManagerID: 6161, ManagerName: "Carmen Ortiz", TeamName: "Ortiz Orbit", Rank: 1, LastRank: 2, TotalPoints: 1312, GameweekPoints: 58},
			{ManagerID: SeedManagerID, ManagerName: "Alex Winter", TeamName: "Winter Wanderers", Rank: 2, LastRank: 1, TotalPoints: 1289, GameweekPoints: 54},
			{ManagerID: 5151, ManagerName: "Bobby Liu", TeamName: "Liu Dynasty", Rank: 3, LastRank: 3, TotalPoints: 1244, GameweekPoints: 49},
			{ManagerID: 7171, ManagerName: "Dana Petrov", TeamName: "Petrov Press", Rank: 4, LastRank: 4, TotalPoints: 1201, GameweekPoints: 38},
		},
		Values: []league.ValuePoint{
			{ManagerID: 6161, ManagerName: "Carmen Ortiz", Gameweek: 21, TeamValue: 103.1},
			{ManagerID: SeedManagerID, ManagerName: "Alex Winter", Gameweek: 21, TeamValue: 102.4},
			{ManagerID: 5151, ManagerName: "Bobby Liu", Gameweek: 21, TeamValue: 101.9},
			{ManagerID: 7171, ManagerName: "Dana Petrov", Gameweek: 21, TeamValue: 100.8},
			{ManagerID: 6161, ManagerName: "Carmen Ortiz", Gameweek: 22, TeamValue: 103.4},
			{ManagerID: SeedManagerID, ManagerName: "Alex Winter", Gameweek: 22, TeamValue: 102.7},
			{ManagerID: 5151, ManagerName: "Bobby Liu", Gameweek: 22, TeamValue: 102.0},
			{ManagerID: 7171, ManagerName: "Dana Petrov", Gameweek: 22, TeamValue: 100.9},
		},
		TransfersByGameweek: map[int]league.TransferSummary{
			22: {
				In: []league.TransferCount{
					{PlayerID: playerIsak, WebName: "Isak", Count: 3},
					{PlayerID: playerPalmer, WebName: "Palmer", Count: 2},
					{PlayerID: playerHaaland, WebName: "Haaland", Count: 1},
				},
				Out: []league.TransferCount{
					{PlayerID: playerWatkins, WebName: "Watkins", Count: 3},
					{PlayerID: playerSon, WebName: "Son", Count: 2},
					{PlayerID: playerFoden, WebName: "Foden", Count: 1},
				},
			},
		},
		CaptainsByGameweek: map[int][]league.CaptainCount{
			22: {
				{PlayerID: playerHaaland, WebName: "Haaland", Count: 2},
				{PlayerID: playerSalah, WebName: "M.Salah", Count: 1},
				{PlayerID: playerPalmer, WebName: "Palmer", Count: 1},
			},
		},
	}
}

func SeedFeedEvents() []feed.Event {
	return []feed.Event{
		// Friday night at the Etihad.
		{ID: 9001, Gameweek: 22, PlayerID: playerHaaland, FixtureID: 2201, Type: feed.EventGoal, PointsDelta: 4, TotalPointsAfter: 6, OccurredAt: time.Date(2026, 1, 23, 20, 23, 0, 0, time.UTC)},
		{ID: 9002, Gameweek: 22, PlayerID: playerFoden, FixtureID: 2201, Type: feed.EventAssist, PointsDelta: 3, TotalPointsAfter: 5, OccurredAt: time.Date(2026, 1, 23, 20, 23, 0, 0, time.UTC)},
		{ID: 9003, Gameweek: 22, PlayerID: playerHaaland, FixtureID: 2201, Type: feed.EventGoal, PointsDelta: 4, TotalPointsAfter: 10, OccurredAt: time.Date(2026, 1, 23, 21, 10, 0, 0, time.UTC)},
		{ID: 9004, Gameweek: 22, PlayerID: playerColwill, FixtureID: 2201, Type: feed.EventYellowCard, PointsDelta: -1, TotalPointsAfter: 1, OccurredAt: time.Date(2026, 1, 23, 21, 20, 0, 0, time.UTC)},
		{ID: 9005, Gameweek: 22, PlayerID: playerColwill, FixtureID: 2201, Type: feed.EventDefcon, PointsDelta: 2, TotalPointsAfter: 3, OccurredAt: time.Date(2026, 1, 23, 21, 35, 0, 0, time.UTC)},
		{ID: 9006, Gameweek: 22, PlayerID: playerHaaland, FixtureID: 2201, Type: feed.EventBonusChange, PointsDelta: 1, TotalPointsAfter: 13, OccurredAt: time.Date(2026, 1, 23, 21, 52, 0, 0, time.UTC), FromBonus: intPtr(2), ToBonus: intPtr(3)},
		// Saturday early kickoff.
		{ID: 9007, Gameweek: 22, PlayerID: playerIsak, FixtureID: 2202, Type: feed.EventGoal, PointsDelta: 4, TotalPointsAfter: 6, OccurredAt: time.Date(2026, 1, 24, 10, 12, 0, 0, time.UTC)},
		{ID: 9008, Gameweek: 22, PlayerID: playerGordon, FixtureID: 2202, Type: feed.EventAssist, PointsDelta: 3, TotalPointsAfter: 5, OccurredAt: time.Date(2026, 1, 24, 10, 12, 0, 0, time.UTC)},
		{ID: 9009, Gameweek: 22, PlayerID: playerSon, FixtureID: 2202, Type: feed.EventGoal, PointsDelta: 5, TotalPointsAfter: 7, OccurredAt: time.Date(2026, 1, 24, 10, 31, 0, 0, time.UTC)},
		{ID: 9010, Gameweek: 22, PlayerID: playerIsak, FixtureID: 2202, Type: feed.EventGoal, PointsDelta: 4, TotalPointsAfter: 10, OccurredAt: time.Date(2026, 1, 24, 11, 18, 0, 0, time.UTC)},
		{ID: 9011, Gameweek: 22, PlayerID: playerRomero, FixtureID: 2202, Type: feed.EventDefcon, PointsDelta: 2, TotalPointsAfter: 4, OccurredAt: time.Date(2026, 1, 24, 11, 42, 0, 0, time.UTC)},
		// Live at the Emirates.
		{ID: 9012, Gameweek: 22, PlayerID: playerSaka, FixtureID: 2203, Type: feed.EventGoal, PointsDelta: 5, TotalPointsAfter: 7, OccurredAt: time.Date(2026, 1, 24, 12, 41, 0, 0, time.UTC)},
		{ID: 9013, Gameweek: 22, PlayerID: playerSalah, FixtureID: 2203, Type: feed.EventGoal, PointsDelta: 5, TotalPointsAfter: 7, OccurredAt: time.Date(2026, 1, 24, 13, 5, 0, 0, time.UTC)},
		{ID: 9014, Gameweek: 22, PlayerID: playerRaya, FixtureID: 2203, Type: feed.EventSaves, PointsDelta: 1, TotalPointsAfter: 3, OccurredAt: time.Date(2026, 1, 24, 13, 22, 0, 0, time.UTC)},
		{ID: 9015, Gameweek: 22, PlayerID: playerSaka, FixtureID: 2203, Type: feed.EventBonusChange, PointsDelta: 1, TotalPointsAfter: 10, OccurredAt: time.Date(2026, 1, 24, 13, 40, 0, 0, time.UTC), FromBonus: intPtr(2), ToBonus: intPtr(3)},
		{ID: 9016, Gameweek: 22, PlayerID: playerSalah, FixtureID: 2203, Type: feed.EventBonusChange, PointsDelta: -1, TotalPointsAfter: 9, OccurredAt: time.Date(2026, 1, 24, 13, 40, 0, 0, time.UTC), FromBonus: intPtr(3), ToBonus: intPtr(2)},
	}
}

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}
