package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FPL_MANAGER_ID", "4242")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresManagerID(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FPL_MANAGER_ID", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without FPL_MANAGER_ID")
	}
}

func TestLoad_ViewerDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FPL_LEAGUE_ID", "9876")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ViewerManagerID != 4242 {
		t.Fatalf("unexpected manager id: %d", cfg.ViewerManagerID)
	}
	if cfg.ViewerLeagueID != 9876 {
		t.Fatalf("unexpected league id: %d", cfg.ViewerLeagueID)
	}
}

func TestLoad_LeagueIDOptional(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FPL_LEAGUE_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ViewerLeagueID != 0 {
		t.Fatalf("expected league id 0 when unset, got %d", cfg.ViewerLeagueID)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "s1765114.eu-fsn-3.betterstackdata.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.BetterStackEnabled {
		t.Fatalf("expected BetterStackEnabled=true")
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "warn" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel.String())
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_SERVICE_NAME", "fplpulse-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fplpulse-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_SIZE", "")
		t.Setenv("CACHE_SCAN_INTERVAL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheSize != 512 {
			t.Fatalf("unexpected default cache size: %d", cfg.CacheSize)
		}
		if cfg.CacheScanInterval != time.Second {
			t.Fatalf("unexpected default scan interval: %s", cfg.CacheScanInterval)
		}
		if cfg.CacheActiveFor != 90*time.Second {
			t.Fatalf("unexpected default active-for window: %s", cfg.CacheActiveFor)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		t.Setenv("CACHE_SIZE", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for CACHE_SIZE=0")
		}
	})
}

func TestLoad_CadenceOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CADENCE_FIXTURES_LIVE", "5s")
	t.Setenv("CADENCE_DIRECTORY", "10m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.CadenceFixturesLive != 5*time.Second {
		t.Fatalf("unexpected fixtures live cadence: %s", cfg.CadenceFixturesLive)
	}
	if cfg.CadenceDirectory != 10*time.Minute {
		t.Fatalf("unexpected directory cadence: %s", cfg.CadenceDirectory)
	}
	if cfg.CadenceStatsLive != 20*time.Second {
		t.Fatalf("expected untouched stats live default, got %s", cfg.CadenceStatsLive)
	}
}

func TestLoad_LocalStoreConfig(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("LOCALSTORE_PATH", "")
		t.Setenv("LOCALSTORE_DEBOUNCE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LocalStorePath != "data/prefs.json" {
			t.Fatalf("unexpected default local store path: %q", cfg.LocalStorePath)
		}
		if cfg.LocalStoreDebounce != 500*time.Millisecond {
			t.Fatalf("unexpected default debounce: %s", cfg.LocalStoreDebounce)
		}
	})

	t.Run("invalid debounce", func(t *testing.T) {
		t.Setenv("LOCALSTORE_DEBOUNCE", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid LOCALSTORE_DEBOUNCE")
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}
