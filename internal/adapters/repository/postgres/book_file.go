package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"

	"github.com/google/uuid"
)

type sqlBookFileRepository struct {
	db SQLQuerier
}

// NewSqlBookFileRepository creates sqlBookFileRepository that implements port.BookFileRepository
func NewSqlBookFileRepository(db SQLQuerier) port.BookFileRepository {
	return &sqlBookFileRepository{
		db: db,
	}
}

// Save inserts a new book file record
func (s *sqlBookFileRepository) Save(ctx context.Context, file domain.BookFile) error {
	query := `INSERT INTO book_files (id, file_name, storage_url, md5_checksum, date_uploaded)
              VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query, file.ID, file.FileName, file.StorageURL, file.MD5Checksum, file.DateUploaded)
	if err != nil {
		return fmt.Errorf("error inserting book file: %w", err)
	}
	return nil
}

// ExistsByChecksum reports whether a record with the given checksum already exists
func (s *sqlBookFileRepository) ExistsByChecksum(ctx context.Context, checksum string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM book_files WHERE md5_checksum = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, checksum).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking checksum existence: %w", err)
	}
	return exists, nil
}

// FindByID finds by id
func (s *sqlBookFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BookFile, error) {
	query := `SELECT id, file_name, storage_url, md5_checksum, date_uploaded
              FROM book_files
              WHERE id = $1`

	var dbFile dbBookFile
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbFile.ID,
		&dbFile.FileName,
		&dbFile.StorageURL,
		&dbFile.MD5Checksum,
		&dbFile.DateUploaded,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookFileNotFound
		}
		return nil, err
	}

	return dbFile.ToDomain(), nil
}

// FindByStorageURL finds by the object's public URL
func (s *sqlBookFileRepository) FindByStorageURL(ctx context.Context, storageURL string) (*domain.BookFile, error) {
	query := `SELECT id, file_name, storage_url, md5_checksum, date_uploaded
              FROM book_files
              WHERE storage_url = $1`

	var dbFile dbBookFile
	err := s.db.QueryRowContext(ctx, query, storageURL).Scan(
		&dbFile.ID,
		&dbFile.FileName,
		&dbFile.StorageURL,
		&dbFile.MD5Checksum,
		&dbFile.DateUploaded,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookFileNotFound
		}
		return nil, err
	}

	return dbFile.ToDomain(), nil
}

// List returns records ordered by upload date descending
func (s *sqlBookFileRepository) List(ctx context.Context, limit, offset int) ([]domain.BookFile, error) {
	query := `SELECT id, file_name, storage_url, md5_checksum, date_uploaded
              FROM book_files
              ORDER BY date_uploaded DESC
              LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying book files: %w", err)
	}
	defer rows.Close()

	var files []domain.BookFile
	for rows.Next() {
		var dbFile dbBookFile
		err := rows.Scan(
			&dbFile.ID,
			&dbFile.FileName,
			&dbFile.StorageURL,
			&dbFile.MD5Checksum,
			&dbFile.DateUploaded,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning book file: %w", err)
		}
		files = append(files, *dbFile.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book files: %w", err)
	}

	return files, nil
}

// dbBookFile represents a book file record in DB
type dbBookFile struct {
	ID           uuid.UUID `db:"id"`
	FileName     string    `db:"file_name"`
	StorageURL   string    `db:"storage_url"`
	MD5Checksum  string    `db:"md5_checksum"`
	DateUploaded time.Time `db:"date_uploaded"`
}

// ToDomain converts to domain.BookFile
func (f *dbBookFile) ToDomain() *domain.BookFile {
	return &domain.BookFile{
		ID:           f.ID,
		FileName:     f.FileName,
		StorageURL:   f.StorageURL,
		MD5Checksum:  f.MD5Checksum,
		DateUploaded: f.DateUploaded,
	}
}
