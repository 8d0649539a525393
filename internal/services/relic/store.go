package relic

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"relic-search/internal/models"

	"gorm.io/gorm"
)

const listRelicsSQL = `SELECT id, name FROM relics`

const matchRelicsSQL = `
    SELECT DISTINCT
        r.id AS id,
        r.name AS name
    FROM
        relics r
        LEFT JOIN items i1 ON r.common1 = i1.id
        LEFT JOIN items i2 ON r.common2 = i2.id
        LEFT JOIN items i3 ON r.common3 = i3.id
        LEFT JOIN items i4 ON r.uncommon1 = i4.id
        LEFT JOIN items i5 ON r.uncommon2 = i5.id
        LEFT JOIN items i6 ON r.rare = i6.id
    WHERE
        LOWER(r.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i1.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i1.description) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i2.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i2.description) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i3.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i3.description) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i4.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i4.description) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i5.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i5.description) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i6.name) LIKE LOWER(@pattern) ESCAPE '!'
        OR LOWER(i6.description) LIKE LOWER(@pattern) ESCAPE '!'
`

const relicDetailsBaseSQL = `
    SELECT
        r.id AS id,
        r.name AS name,
        i1.name AS common1,
        i2.name AS common2,
        i3.name AS common3,
        i4.name AS uncommon1,
        i5.name AS uncommon2,
        i6.name AS rare
    FROM
        relics r
        LEFT JOIN items i1 ON r.common1 = i1.id
        LEFT JOIN items i2 ON r.common2 = i2.id
        LEFT JOIN items i3 ON r.common3 = i3.id
        LEFT JOIN items i4 ON r.uncommon1 = i4.id
        LEFT JOIN items i5 ON r.uncommon2 = i5.id
        LEFT JOIN items i6 ON r.rare = i6.id
`

const relicDetailsSQL = relicDetailsBaseSQL + `    WHERE r.id IN ?
`

// likeEscaper targets LIKE ... ESCAPE '!', which sql_mode NO_BACKSLASH_ESCAPES does not affect.
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// likePattern turns a search term into a literal substring pattern for LIKE ... ESCAPE '!'.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type detailRow struct {
	ID        int64   `gorm:"column:id"`
	Name      string  `gorm:"column:name"`
	Common1   *string `gorm:"column:common1"`
	Common2   *string `gorm:"column:common2"`
	Common3   *string `gorm:"column:common3"`
	Uncommon1 *string `gorm:"column:uncommon1"`
	Uncommon2 *string `gorm:"column:uncommon2"`
	Rare      *string `gorm:"column:rare"`
}

func (r detailRow) detail() *models.RelicDetail {
	return &models.RelicDetail{
		ID:    r.ID,
		Name:  r.Name,
		Items: [6]*string{r.Common1, r.Common2, r.Common3, r.Uncommon1, r.Uncommon2, r.Rare},
	}
}

// Store runs the relic queries. Each public method holds one pooled connection for its whole
// duration and releases it before returning.
type Store struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewStore(db *gorm.DB, timeout time.Duration) *Store {
	return &Store{db: db, timeout: timeout}
}

func (s *Store) withConn(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var queryErr error
	err := s.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		queryErr = fn(tx)
		return queryErr
	})
	if queryErr != nil {
		return &QueryError{Err: queryErr}
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// session gives each statement its own state while staying on the acquired connection.
func session(tx *gorm.DB) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true})
}

// ListRelics returns every relic id and name in the store's natural order.
func (s *Store) ListRelics(ctx context.Context) ([]models.RelicSummary, error) {
	relics := make([]models.RelicSummary, 0)
	err := s.withConn(ctx, func(tx *gorm.DB) error {
		return session(tx).Raw(listRelicsSQL).Scan(&relics).Error
	})
	if err != nil {
		return nil, err
	}
	return relics, nil
}

// MatchRelics returns the distinct relics whose name, or whose slot items' name or description,
// contains term. Database row order is preserved. Details are keyed by relic id; a relic missing
// from the map had no detail row.
func (s *Store) MatchRelics(ctx context.Context, term string) ([]models.RelicSummary, map[int64]*models.RelicDetail, error) {
	matches := make([]models.RelicSummary, 0)
	details := make(map[int64]*models.RelicDetail)

	err := s.withConn(ctx, func(tx *gorm.DB) error {
		err := session(tx).Raw(matchRelicsSQL, sql.Named("pattern", likePattern(term))).Scan(&matches).Error
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return nil
		}

		ids := make([]int64, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ID)
		}
		var rows []detailRow
		if err := session(tx).Raw(relicDetailsSQL, ids).Scan(&rows).Error; err != nil {
			return err
		}
		for _, row := range rows {
			details[row.ID] = row.detail()
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return matches, details, nil
}

// RelicDetails returns every relic with its slot item names, ordered by id.
func (s *Store) RelicDetails(ctx context.Context) ([]*models.RelicDetail, error) {
	var rows []detailRow
	err := s.withConn(ctx, func(tx *gorm.DB) error {
		return session(tx).Raw(relicDetailsBaseSQL + "    ORDER BY r.id\n").Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	details := make([]*models.RelicDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.detail())
	}
	return details, nil
}

// AdvancedSearch matches relics on a single column, ordered by name.
func (s *Store) AdvancedSearch(ctx context.Context, term string, field SearchField) ([]models.RelicSummary, error) {
	q, ok := advancedQueries[field]
	if !ok {
		q = advancedQueries[FieldName]
	}

	relics := make([]models.RelicSummary, 0)
	err := s.withConn(ctx, func(tx *gorm.DB) error {
		return session(tx).Raw(q.sql, q.arg(term)).Scan(&relics).Error
	})
	if err != nil {
		return nil, err
	}
	return relics, nil
}
