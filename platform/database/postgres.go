package database

import (
	"fmt"

	"github.com/DedS3t/monopoly-simulator/app/models"
	"github.com/DedS3t/monopoly-simulator/platform/config"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

func PostgreSQLConnection(cfg config.Database) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.User,
		Addr:     cfg.Addr,
		Password: cfg.Password,
		Database: cfg.Name,
	})
}

// CreateSchema creates the history tables if they do not exist yet.
func CreateSchema(db *pg.DB) error {
	for _, model := range []interface{}{
		(*models.MatchRecord)(nil),
		(*models.BatchRecord)(nil),
	} {
		err := db.Model(model).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
		if err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
