package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/logging"
)

// Columns expected in the seed CSV, after a header row.
const (
	colResource = iota
	colSection
	colImage
	colAsset
	colStock
	colDeduction
	colDate
	columnCount
)

// Result counts what a load inserted.
type Result struct {
	Resources int
	Assets    int
	Skipped   int
}

// LoadFile seeds the inventory from a CSV file when the resources table is
// still empty.
func LoadFile(ctx context.Context, db *sqlx.DB, path string, log logging.Logger) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open seed %s: %w", path, err)
	}
	defer file.Close()
	return Load(ctx, db, file, log)
}

// Load ingests resource_name, section, image_path, asset_name, stock_count,
// deduction, date rows in one transaction. Resources are created once per
// name. Malformed rows are logged and skipped. Nothing is loaded when
// resources already exist.
func Load(ctx context.Context, db *sqlx.DB, r io.Reader, log logging.Logger) (Result, error) {
	var existing int
	if err := db.GetContext(ctx, &existing, `SELECT COUNT(*) FROM resources`); err != nil {
		return Result{}, fmt.Errorf("count resources: %w", err)
	}
	if existing > 0 {
		log.Info(ctx, "inventory already present, skipping seed", "resources", existing)
		return Result{}, nil
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, nil
		}
		return Result{}, fmt.Errorf("read seed header: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	resourceStmt, err := tx.PreparexContext(ctx, db.Rebind(`INSERT INTO resources (name, section, image_path) VALUES (?, ?, ?) RETURNING id`))
	if err != nil {
		return Result{}, fmt.Errorf("prepare resource insert: %w", err)
	}
	defer resourceStmt.Close()
	assetStmt, err := tx.PreparexContext(ctx, db.Rebind(`INSERT INTO assets (resource_id, name, stock_count, deduction, date) VALUES (?, ?, ?, ?, ?)`))
	if err != nil {
		return Result{}, fmt.Errorf("prepare asset insert: %w", err)
	}
	defer assetStmt.Close()

	var res Result
	resourceIDs := map[string]int64{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Warn(ctx, "unable to read seed row", "line", line, "error", err)
			res.Skipped++
			continue
		}
		asset, resource, err := parseRow(record)
		if err != nil {
			log.Warn(ctx, "skipping seed row", "line", line, "error", err)
			res.Skipped++
			continue
		}

		id, ok := resourceIDs[resource.Name]
		if !ok {
			if err := resourceStmt.QueryRowxContext(ctx, resource.Name, resource.Section, resource.ImagePath).Scan(&id); err != nil {
				return Result{}, fmt.Errorf("insert resource %s: %w", resource.Name, err)
			}
			resourceIDs[resource.Name] = id
			res.Resources++
		}
		if _, err := assetStmt.ExecContext(ctx, id, asset.Name, asset.StockCount, asset.Deduction, asset.Date); err != nil {
			return Result{}, fmt.Errorf("insert asset %s: %w", asset.Name, err)
		}
		res.Assets++
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit seed: %w", err)
	}
	log.Info(ctx, "seeded inventory", "resources", res.Resources, "assets", res.Assets, "skipped", res.Skipped)
	return res, nil
}

func parseRow(record []string) (domain.Asset, domain.Resource, error) {
	if len(record) < columnCount {
		return domain.Asset{}, domain.Resource{}, fmt.Errorf("expected %d columns, got %d", columnCount, len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	resource := domain.Resource{Name: record[colResource], Section: record[colSection], ImagePath: record[colImage]}
	if resource.Name == "" || resource.Section == "" || record[colAsset] == "" {
		return domain.Asset{}, domain.Resource{}, errors.New("resource, section and asset name are required")
	}

	stock, err := strconv.ParseInt(record[colStock], 10, 64)
	if err != nil {
		return domain.Asset{}, domain.Resource{}, fmt.Errorf("stock_count: %w", err)
	}
	deduction, err := strconv.ParseInt(record[colDeduction], 10, 64)
	if err != nil {
		return domain.Asset{}, domain.Resource{}, fmt.Errorf("deduction: %w", err)
	}
	date, err := domain.ParseDate(record[colDate])
	if err != nil {
		return domain.Asset{}, domain.Resource{}, err
	}
	return domain.Asset{Name: record[colAsset], StockCount: stock, Deduction: deduction, Date: date}, resource, nil
}
