package dictionary

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Options selects and configures a dictionary backend.
type Options struct {
	Backend string // "memory" | "sqlite" | "redis"
	File    string // word list; empty → embedded
	Locale  string
	Seed    bool // import the word list into sqlite/redis on open

	// Fallback chains the in-memory word list behind sqlite/redis so words
	// missing from the store, or lookups during an outage, still resolve.
	Fallback bool

	DSN string // sqlite

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Handle is an opened dictionary plus its cleanup.
type Handle struct {
	Dictionary
	Count func(ctx context.Context) (int, error)
	Close func() error
}

// Open builds the backend described by opts.
func Open(ctx context.Context, opts Options) (*Handle, error) {
	locale := normalizeLocale(opts.Locale)
	nop := func() error { return nil }

	switch opts.Backend {
	case "", "memory":
		wl, err := LoadWordList(opts.File, locale)
		if err != nil {
			return nil, err
		}
		return &Handle{
			Dictionary: wl,
			Count:      func(context.Context) (int, error) { return wl.Len(locale), nil },
			Close:      nop,
		}, nil

	case "sqlite":
		db, err := OpenSQLite(opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite dictionary: %w", err)
		}
		if opts.Seed {
			if err := seed(ctx, opts.File, locale, db.Import); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		return &Handle{
			Dictionary: withFallback(db, opts, locale),
			Count:      func(ctx context.Context) (int, error) { return db.Count(ctx, locale) },
			Close:      db.Close,
		}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis %s: %w", opts.RedisAddr, err)
		}
		rd := NewRedis(client, opts.RedisPrefix)
		if opts.Seed {
			if err := seed(ctx, opts.File, locale, rd.Import); err != nil {
				_ = client.Close()
				return nil, err
			}
		}
		return &Handle{
			Dictionary: withFallback(rd, opts, locale),
			Count:      func(ctx context.Context) (int, error) { return rd.Count(ctx, locale) },
			Close:      client.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown dictionary backend %q", opts.Backend)
}

// withFallback puts the word list behind primary when opts.Fallback is set.
// A list that cannot be read leaves primary alone.
func withFallback(primary Dictionary, opts Options, locale string) Dictionary {
	if !opts.Fallback {
		return primary
	}
	wl, err := LoadWordList(opts.File, locale)
	if err != nil {
		log.Warn().Err(err).Msg("dictionary fallback disabled")
		return primary
	}
	return Chain{primary, wl}
}

type importFunc func(ctx context.Context, locale string, words []string) (int, error)

func seed(ctx context.Context, file, locale string, imp importFunc) error {
	list, err := ReadWords(file)
	if err != nil {
		return err
	}
	n, err := imp(ctx, locale, list)
	if err != nil {
		return fmt.Errorf("seed dictionary: %w", err)
	}
	log.Info().Str("locale", locale).Int("added", n).Int("total", len(list)).Msg("dictionary seeded")
	return nil
}
