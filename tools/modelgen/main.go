package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// journalTables are the tables whose models live in the gorm adapter.
var journalTables = []string{"bot_decisions", "bot_trades"}

func main() {
	var dsn, out string
	flag.StringVar(&dsn, "dsn", os.Getenv("FARMERBOT_DB_DSN"), "postgres dsn")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or FARMERBOT_DB_DSN")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	for _, table := range journalTables {
		g.GenerateModel(table)
	}
	g.Execute()

	fmt.Printf("generated %d journal models at %s\n", len(journalTables), out)
}
