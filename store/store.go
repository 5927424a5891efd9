// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists analysis export records to a SQL database so
// runs can be compared after the fact.
package store

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"

	"github.com/fsbench/cachestat/cachetab"
	"github.com/fsbench/cachestat/reportfmt"
)

// DB is a handle to the results database. It is safe for sequential
// use only, which matches how the analyzer runs.
type DB struct {
	sql *sql.DB
	// prepared statements
	insertRun    *sql.Stmt
	insertResult *sql.Stmt
}

// OpenSQL creates a DB backed by a SQL database. The parameters are
// the same as for sql.Open. sqlite3 and mysql are explicitly
// supported; other engines receive MySQL syntax, which may or may not
// be compatible.
func OpenSQL(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	d := &DB{sql: db}
	if err := d.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := d.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// createTmpl is the template used to prepare the CREATE statements for
// the database. It is evaluated with . as a map containing one entry
// whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID VARCHAR(36) PRIMARY KEY,
	Root VARCHAR(1024),
	CreatedAt {{if .sqlite3}}TIMESTAMP{{else}}DATETIME{{end}}
);
CREATE TABLE IF NOT EXISTS Results (
	RunID VARCHAR(36),
	Workload VARCHAR(64),
	Strategy VARCHAR(64),
	TotalOps BIGINT,
	SuccessfulOps BIGINT,
	FailedOps BIGINT,
	TotalBytes BIGINT,
	TotalMB DOUBLE,
	TotalSec DOUBLE,
	ThroughputMBps DOUBLE,
	OpsPerSec BIGINT,
	AvgLatencyMS DOUBLE,
	MinLatencyMS DOUBLE,
	P50LatencyMS DOUBLE,
	P99LatencyMS DOUBLE,
	MaxLatencyMS DOUBLE,
	PRIMARY KEY (RunID, Workload, Strategy),
	FOREIGN KEY (RunID) REFERENCES Runs(RunID) ON UPDATE CASCADE ON DELETE CASCADE
);
`))

// createTables creates any missing tables on the connection.
// driverName is the same driver name passed to sql.Open and selects
// the correct syntax.
func (db *DB) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

// prepareStatements calls db.sql.Prepare on reusable SQL statements.
func (db *DB) prepareStatements() error {
	var err error
	db.insertRun, err = db.sql.Prepare("INSERT INTO Runs (RunID, Root, CreatedAt) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	db.insertResult, err = db.sql.Prepare(
		"INSERT INTO Results (RunID, Workload, Strategy, TotalOps, SuccessfulOps, FailedOps," +
			" TotalBytes, TotalMB, TotalSec, ThroughputMBps, OpsPerSec, AvgLatencyMS," +
			" MinLatencyMS, P50LatencyMS, P99LatencyMS, MaxLatencyMS)" +
			" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	return err
}

// SaveRun records one analysis run and its flat export rows in a
// single transaction and returns the new run's ID. Unset optional
// latencies are stored as NULL, never as zero.
func (db *DB) SaveRun(root string, rows []cachetab.Row) (runID string, err error) {
	id := uuid.New().String()

	tx, err := db.sql.Begin()
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Stmt(db.insertRun).Exec(id, root, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	for _, row := range rows {
		r := row.Result
		_, err = tx.Stmt(db.insertResult).Exec(
			id, string(row.Bench), string(row.Cache),
			r.TotalOps, r.SuccessfulOps, r.FailedOps,
			r.TotalBytes, r.TotalBytesMB, r.TotalTimeSec,
			r.ThroughputMBps, r.OpsPerSec, r.AvgLatencyMS,
			nullable(r.MinLatencyMS), nullable(r.P50LatencyMS),
			nullable(r.P99LatencyMS), nullable(r.MaxLatencyMS),
		)
		if err != nil {
			return "", fmt.Errorf("insert result %s/%s: %w", row.Bench, row.Cache, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func nullable(o reportfmt.OptFloat) sql.NullFloat64 {
	v, ok := o.Get()
	return sql.NullFloat64{Float64: v, Valid: ok}
}

// Close closes the database connections, releasing any associated
// resources.
func (db *DB) Close() error {
	if err := db.insertRun.Close(); err != nil {
		return err
	}
	if err := db.insertResult.Close(); err != nil {
		return err
	}
	return db.sql.Close()
}
