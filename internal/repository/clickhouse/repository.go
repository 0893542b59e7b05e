package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/domain"
	"github.com/nani454554/portfolio/internal/repository"
)

var _ repository.EventRepository = (*Repository)(nil)

// Repository implements EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the tracking_events table. ReplacingMergeTree collapses
// redelivered queue messages sharing an event_id.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS tracking_events (
		event_id String,
		event_type LowCardinality(String),
		page LowCardinality(String),
		ip_address String,
		user_agent String,
		occurred_at DateTime64(3),
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (event_id)
	ORDER BY (event_id, occurred_at)
	PARTITION BY toYYYYMM(occurred_at)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create tracking_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of tracking events into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.TrackingEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO tracking_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		if event.Version == 0 {
			event.Version = uint64(time.Now().UnixNano())
		}
		if event.ProcessedAt.IsZero() {
			event.ProcessedAt = time.Now().UTC()
		}

		err := batch.Append(
			event.EventID,
			event.EventType,
			event.Page,
			event.IPAddress,
			event.UserAgent,
			time.UnixMilli(event.OccurredAt).UTC(),
			event.ProcessedAt,
			event.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// GetTimeline aggregates tracking events of one type over a time range
func (r *Repository) GetTimeline(ctx context.Context, query repository.TimelineQuery) (*repository.TimelineResult, error) {
	result := &repository.TimelineResult{
		Groups: []repository.TimelineGroupResult{},
	}

	whereClause := "WHERE event_type = ? AND occurred_at >= fromUnixTimestamp64Milli(?) AND occurred_at <= fromUnixTimestamp64Milli(?)"
	args := []interface{}{query.EventType, query.From * 1000, query.To * 1000}

	overallQuery := fmt.Sprintf(`
		SELECT
			count() AS total_count,
			uniq(ip_address) AS unique_visitors
		FROM tracking_events FINAL
		%s
	`, whereClause)

	row := r.client.Conn().QueryRow(ctx, overallQuery, args...)
	if err := row.Scan(&result.TotalCount, &result.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("failed to query timeline totals: %w", err)
	}

	if query.GroupBy == "" {
		return result, nil
	}

	var selectField, groupByClause, orderBy string
	switch query.GroupBy {
	case "page":
		selectField = "page"
		groupByClause = "GROUP BY page"
		orderBy = "ORDER BY total_count DESC"
	case "hour":
		selectField = "formatDateTime(toStartOfHour(occurred_at), '%Y-%m-%d %H:00:00')"
		groupByClause = "GROUP BY group_value"
		orderBy = "ORDER BY group_value ASC"
	case "day":
		selectField = "formatDateTime(toStartOfDay(occurred_at), '%Y-%m-%d')"
		groupByClause = "GROUP BY group_value"
		orderBy = "ORDER BY group_value ASC"
	default:
		return nil, fmt.Errorf("unsupported group_by value: %s (supported: page, hour, day)", query.GroupBy)
	}

	groupedQuery := fmt.Sprintf(`
		SELECT
			%s AS group_value,
			count() AS total_count
		FROM tracking_events FINAL
		%s
		%s
		%s
	`, selectField, whereClause, groupByClause, orderBy)

	rows, err := r.client.Conn().Query(ctx, groupedQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query grouped timeline: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close grouped timeline rows", zap.Error(err))
		}
	}(rows)

	for rows.Next() {
		var group repository.TimelineGroupResult
		if err := rows.Scan(&group.GroupValue, &group.TotalCount); err != nil {
			return nil, fmt.Errorf("failed to scan grouped timeline row: %w", err)
		}
		result.Groups = append(result.Groups, group)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grouped timeline rows: %w", err)
	}

	return result, nil
}
