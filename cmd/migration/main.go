package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"gitlab.com/dirk.krummacker/user-form/internal/config"
	_ "modernc.org/sqlite"
)

// Usage example on the command line:
// > STORE=mysql DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go -file=../../scripts/schema-mysql.sql
// > STORE=sqlite DBPATH=users.db go run main.go -file=../../scripts/schema.sql
func main() {
	filePtr := flag.String("file", "schema.sql", "the sql file to execute")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Store != config.StoreSQLite && cfg.Store != config.StoreMySQL {
		log.Fatalf("STORE must be %s or %s, not %s", config.StoreSQLite, config.StoreMySQL, cfg.Store)
	}
	db := sqlx.MustOpen(cfg.DriverName(), cfg.DSN())
	defer db.Close()

	readFile, err := os.Open(*filePtr) // nosemgrep
	if err != nil {
		log.Fatal(err)
	}
	defer readFile.Close()

	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	builder := strings.Builder{}
	for fileScanner.Scan() {
		line := fileScanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		builder.WriteString(line)
		builder.WriteString(" ")
		if strings.Contains(line, ";") {
			db.MustExec(builder.String())
			builder = strings.Builder{}
		}
	}
	if err := fileScanner.Err(); err != nil {
		log.Fatal(err)
	}
}
