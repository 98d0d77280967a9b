package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/ducflair/ducpdf"
)

// FormatVersion is the container layout version written by Encoder.
const FormatVersion = 1

// Meta keys.
const (
	metaSource   = "source"
	metaVersion  = "version"
	metaChecksum = "checksum"
)

// Compile-time interface verification.
var (
	_ ducpdf.Encoder = (*Encoder)(nil)
	_ ducpdf.Decoder = (*Decoder)(nil)
)

// Encoder writes documents as SQLite containers.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode returns the container bytes for doc, tagged with source.
func (e *Encoder) Encode(ctx context.Context, doc *ducpdf.Document, source string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "ducpdf-encode-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document"+ducpdf.Extension)
	db := NewDB(path)
	if err := db.Open(); err != nil {
		return nil, err
	}
	defer func() {
		if db != nil {
			_ = db.Close()
		}
	}()

	if err := writeDocument(ctx, db, doc, source); err != nil {
		return nil, err
	}

	// Close before reading so the journal is folded into the main file.
	if err := db.Close(); err != nil {
		db = nil
		return nil, fmt.Errorf("failed to close container: %w", err)
	}
	db = nil

	return os.ReadFile(path)
}

func writeDocument(ctx context.Context, db *DB, doc *ducpdf.Document, source string) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	checksum := xxhash.New()
	for i, el := range doc.Elements {
		data, err := json.Marshal(el)
		if err != nil {
			return fmt.Errorf("failed to marshal element %s: %w", el.ID, err)
		}
		_, _ = checksum.Write(data)

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO elements (id, position, type, x, y, width, height, text, font_size, data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, el.ID, i, el.Type, el.X, el.Y, el.Width, el.Height, el.Text, el.FontSize, string(data)); err != nil {
			return fmt.Errorf("failed to insert element %s: %w", el.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO app_state (id, grid_size, view_background_color, scope)
		VALUES (1, ?, ?, ?)
	`, doc.AppState.GridSize, doc.AppState.ViewBackgroundColor, doc.AppState.Scope); err != nil {
		return fmt.Errorf("failed to insert app state: %w", err)
	}

	for id, f := range doc.Files {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO binary_files (id, mime_type, data, created)
			VALUES (?, ?, ?, ?)
		`, id, f.MimeType, f.Data, f.Created); err != nil {
			return fmt.Errorf("failed to insert file %s: %w", id, err)
		}
	}

	meta := map[string]string{
		metaSource:   source,
		metaVersion:  strconv.Itoa(FormatVersion),
		metaChecksum: formatChecksum(checksum),
	}
	for key, value := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("failed to insert meta %s: %w", key, err)
		}
	}

	return tx.Commit()
}

// Decoder reads SQLite containers produced by Encoder.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses container bytes back into a document.
// Returns EINVALID if data is not a container or its checksum does not match.
func (d *Decoder) Decode(ctx context.Context, data []byte) (*ducpdf.Document, error) {
	dir, err := os.MkdirTemp("", "ducpdf-decode-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "document"+ducpdf.Extension)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write temp container: %w", err)
	}

	db := NewDB(path)
	db.ReadOnly = true
	if err := db.Open(); err != nil {
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "not a DUC container: %v", err)
	}
	defer db.Close()

	doc, err := readDocument(ctx, db)
	if err != nil {
		var appErr *ducpdf.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "not a DUC container: %v", err)
	}
	return doc, nil
}

func readDocument(ctx context.Context, db *DB) (*ducpdf.Document, error) {
	if _, err := readMeta(ctx, db, metaSource); err != nil {
		return nil, err
	}

	version, err := readMeta(ctx, db, metaVersion)
	if err != nil {
		return nil, err
	}
	if v, err := strconv.Atoi(version); err != nil || v > FormatVersion {
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "unsupported container version %q", version)
	}

	wantChecksum, err := readMeta(ctx, db, metaChecksum)
	if err != nil {
		return nil, err
	}

	doc := ducpdf.NewDocument(nil)

	err = db.QueryRowContext(ctx, `
		SELECT grid_size, view_background_color, scope FROM app_state WHERE id = 1
	`).Scan(&doc.AppState.GridSize, &doc.AppState.ViewBackgroundColor, &doc.AppState.Scope)
	if err == sql.ErrNoRows {
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "container has no app state")
	}
	if err != nil {
		return nil, err
	}

	elements, checksum, err := readElements(ctx, db)
	if err != nil {
		return nil, err
	}
	if checksum != wantChecksum {
		return nil, ducpdf.Errorf(ducpdf.EINVALID, "container checksum mismatch: got %s, want %s", checksum, wantChecksum)
	}
	doc.Elements = elements

	files, err := readFiles(ctx, db)
	if err != nil {
		return nil, err
	}
	doc.Files = files

	return doc, nil
}

func readMeta(ctx context.Context, db *DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ducpdf.Errorf(ducpdf.EINVALID, "container has no %s", key)
	}
	return value, err
}

func readElements(ctx context.Context, db *DB) ([]*ducpdf.TextElement, string, error) {
	rows, err := db.QueryContext(ctx, `SELECT data FROM elements ORDER BY position ASC`)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	checksum := xxhash.New()
	elements := []*ducpdf.TextElement{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, "", err
		}
		_, _ = checksum.WriteString(data)

		var el ducpdf.TextElement
		if err := json.Unmarshal([]byte(data), &el); err != nil {
			return nil, "", ducpdf.Errorf(ducpdf.EINVALID, "malformed element: %v", err)
		}
		elements = append(elements, &el)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	return elements, formatChecksum(checksum), nil
}

func readFiles(ctx context.Context, db *DB) (map[string]ducpdf.BinaryFile, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, mime_type, data, created FROM binary_files`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := map[string]ducpdf.BinaryFile{}
	for rows.Next() {
		var f ducpdf.BinaryFile
		if err := rows.Scan(&f.ID, &f.MimeType, &f.Data, &f.Created); err != nil {
			return nil, err
		}
		files[f.ID] = f
	}
	return files, rows.Err()
}

// formatChecksum returns the big-endian hex form of the digest.
func formatChecksum(d *xxhash.Digest) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, d.Sum64()))
}
