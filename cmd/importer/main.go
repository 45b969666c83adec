package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"locator-api/internal/config"
	"locator-api/internal/models"
	"locator-api/internal/validator"

	"github.com/jackc/pgx/v5"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	addresses, skipped, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d addresses (%d rows skipped without coordinates)\n", len(addresses), skipped)

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure table exists
	err = createTableIfNotExists(conn)
	if err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertAddresses(conn, addresses)
	if err != nil {
		fmt.Printf("Error inserting addresses: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(addresses))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d addresses\n", len(addresses))
}

// parseCSV reads rows of historical resolved addresses. Expected columns:
// full_address,street,city,province,zip_code,latitude,longitude,confidence,address_type
// Every row passes through the validator; rows without both coordinates are
// skipped rather than rejected, since only placed addresses are stored.
func parseCSV(filePath string) ([]models.Address, int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}

	var addresses []models.Address
	var skipped int
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, 0, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 9 {
			return nil, 0, fmt.Errorf("invalid record length: %d, expected 9 columns", len(record))
		}

		lat, latErr := strconv.ParseFloat(record[5], 64)
		lng, lngErr := strconv.ParseFloat(record[6], 64)
		if latErr != nil || lngErr != nil {
			skipped++
			continue
		}

		confidence, err := strconv.Atoi(record[7])
		if err != nil {
			confidence = validator.DefaultConfidence
		}

		addr := validator.Clean(models.Address{
			FullAddress: record[0],
			Street:      record[1],
			City:        record[2],
			Province:    record[3],
			ZipCode:     record[4],
			Latitude:    &lat,
			Longitude:   &lng,
			Confidence:  confidence,
			AddressType: record[8],
		})

		if addr.FullAddress == "" {
			skipped++
			continue
		}

		addresses = append(addresses, addr)
	}

	return addresses, skipped, nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		full_address TEXT NOT NULL,
		street TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		province TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT 'Philippines',
		zip_code VARCHAR(4) NOT NULL DEFAULT '0000',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		confidence INT NOT NULL DEFAULT 50,
		address_type TEXT NOT NULL DEFAULT 'street_address',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS addresses_created_at_idx ON addresses (created_at DESC);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertAddresses(conn *pgx.Conn, addresses []models.Address) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"addresses"},
		[]string{"full_address", "street", "city", "province", "country", "zip_code", "latitude", "longitude", "confidence", "address_type"},
		pgx.CopyFromSlice(len(addresses), func(i int) ([]interface{}, error) {
			a := addresses[i]
			return []interface{}{a.FullAddress, a.Street, a.City, a.Province, a.Country, a.ZipCode, a.Latitude, a.Longitude, a.Confidence, a.AddressType}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM addresses").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count addresses: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("address count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	var sample string
	err = conn.QueryRow(context.Background(), "SELECT full_address FROM addresses LIMIT 1").Scan(&sample)
	if err != nil {
		return fmt.Errorf("failed to check sample row: %w", err)
	}

	fmt.Printf("Sample address: %s\n", sample)
	return nil
}
