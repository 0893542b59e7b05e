package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nani454554/portfolio/internal/domain"
	"github.com/nani454554/portfolio/internal/repository"
)

var _ repository.RecordStore = (*Repository)(nil)

// Repository implements RecordStore on PostgreSQL, one table per collection
type Repository struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// NewRepository creates a PostgreSQL repository backed by the given pool
func NewRepository(pool *pgxpool.Pool, log *zap.Logger) *Repository {
	return &Repository{pool: pool, log: log}
}

// InitSchema creates the three tables and their indexes if they don't exist
func (r *Repository) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			company TEXT,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages (created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_email ON contact_messages (email)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_is_read ON contact_messages (is_read)`,
		`CREATE TABLE IF NOT EXISTS portfolio_views (
			id TEXT PRIMARY KEY,
			ip_address TEXT NOT NULL,
			user_agent TEXT,
			visited_at TIMESTAMPTZ NOT NULL,
			page_viewed TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_portfolio_views_visited_at ON portfolio_views (visited_at)`,
		`CREATE INDEX IF NOT EXISTS idx_portfolio_views_ip_address ON portfolio_views (ip_address)`,
		`CREATE TABLE IF NOT EXISTS resume_downloads (
			id TEXT PRIMARY KEY,
			ip_address TEXT NOT NULL,
			user_agent TEXT,
			downloaded_at TIMESTAMPTZ NOT NULL,
			download_type TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resume_downloads_downloaded_at ON resume_downloads (downloaded_at)`,
		`CREATE INDEX IF NOT EXISTS idx_resume_downloads_ip_address ON resume_downloads (ip_address)`,
	}

	for _, stmt := range statements {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	r.log.Info("PostgreSQL schema initialized successfully")
	return nil
}

// InsertContactMessage inserts a contact_messages row
func (r *Repository) InsertContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, company, subject, message, created_at, is_read)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		msg.ID, msg.Name, msg.Email, msg.Company, msg.Subject, msg.Message, msg.CreatedAt, msg.IsRead,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns up to limit contact messages ordered by created_at descending
func (r *Repository) ListContactMessages(ctx context.Context, limit int) ([]*domain.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, company, subject, message, created_at, is_read
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]*domain.ContactMessage, 0, limit)
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Subject, &m.Message, &m.CreatedAt, &m.IsRead); err != nil {
			return nil, fmt.Errorf("failed to scan contact message row: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact message rows: %w", err)
	}

	return messages, nil
}

// CountContactMessages counts contact_messages rows
func (r *Repository) CountContactMessages(ctx context.Context) (int64, error) {
	return r.count(ctx, "contact_messages")
}

// InsertView inserts a portfolio_views row
func (r *Repository) InsertView(ctx context.Context, view *domain.PortfolioView) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO portfolio_views (id, ip_address, user_agent, visited_at, page_viewed)
		 VALUES ($1, $2, $3, $4, $5)`,
		view.ID, view.IPAddress, view.UserAgent, view.VisitedAt, view.PageViewed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio view: %w", err)
	}
	return nil
}

// CountViews counts portfolio_views rows
func (r *Repository) CountViews(ctx context.Context) (int64, error) {
	return r.count(ctx, "portfolio_views")
}

// InsertDownload inserts a resume_downloads row
func (r *Repository) InsertDownload(ctx context.Context, download *domain.ResumeDownload) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO resume_downloads (id, ip_address, user_agent, downloaded_at, download_type)
		 VALUES ($1, $2, $3, $4, $5)`,
		download.ID, download.IPAddress, download.UserAgent, download.DownloadedAt, download.DownloadType,
	)
	if err != nil {
		return fmt.Errorf("failed to insert resume download: %w", err)
	}
	return nil
}

// CountDownloads counts resume_downloads rows
func (r *Repository) CountDownloads(ctx context.Context) (int64, error) {
	return r.count(ctx, "resume_downloads")
}

// count only ever receives one of the fixed table names above
func (r *Repository) count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

// Ping checks if the PostgreSQL connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the connection pool
func (r *Repository) Close(_ context.Context) error {
	r.log.Info("Closing PostgreSQL pool")
	r.pool.Close()
	return nil
}
