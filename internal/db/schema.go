package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Tables lists every table the service reads or writes, in creation order.
var Tables = []string{"users", "rides", "passengers", "bookings", "route_fares"}

var ddl = map[string]string{
	"users": `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	phone VARCHAR(64) NOT NULL,
	email VARCHAR(255) NOT NULL,
	is_user TINYINT(1) NOT NULL DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	"rides": `
CREATE TABLE IF NOT EXISTS rides (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	driver_id VARCHAR(64) NOT NULL,
	pickup_point VARCHAR(255) NOT NULL,
	dropoff_point VARCHAR(255) NOT NULL,
	available_seats INT UNSIGNED NOT NULL DEFAULT 0,
	departure_time DATETIME NULL,
	car_model VARCHAR(128) NULL,
	car_make VARCHAR(128) NULL,
	number_plate VARCHAR(32) NULL,
	fare DECIMAL(12,2) NULL,
	date DATE NULL,
	time TIME NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_rides_date_time (date, time)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	"passengers": `
CREATE TABLE IF NOT EXISTS passengers (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	phone VARCHAR(64) NOT NULL
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	"bookings": `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	ride_id VARCHAR(64) NOT NULL,
	passenger_id VARCHAR(64) NOT NULL,
	pickup_point VARCHAR(255) NOT NULL,
	dropoff_point VARCHAR(255) NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_bookings_ride (ride_id),
	CONSTRAINT fk_bookings_ride FOREIGN KEY (ride_id) REFERENCES rides (id),
	CONSTRAINT fk_bookings_passenger FOREIGN KEY (passenger_id) REFERENCES passengers (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	"route_fares": `
CREATE TABLE IF NOT EXISTS route_fares (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	origin_city VARCHAR(128) NOT NULL,
	destination_city VARCHAR(128) NOT NULL,
	fare DECIMAL(12,2) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	KEY idx_route_fares_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// HasTable reports whether table exists in the current schema.
func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, db Execer) error {
	for _, table := range Tables {
		if _, err := db.ExecContext(ctx, ddl[table]); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	log.Printf("[DB] schema ensured tables=%d", len(Tables))
	return nil
}

// MissingTables returns the tables from Tables that do not exist yet.
func MissingTables(ctx context.Context, q QueryRower) []string {
	missing := []string{}
	for _, table := range Tables {
		if !HasTable(ctx, q, table) {
			missing = append(missing, table)
		}
	}
	return missing
}
