package postgres

import "fmt"

const defaultPort = "5432"

// ConnString returns DATABASE_URL when set, otherwise a URL assembled from the
// POSTGRES_* variables. It is empty when neither host nor database is known.
func ConnString(getenv func(string) string) string {
	if url := getenv("DATABASE_URL"); url != "" {
		return url
	}

	dbName := getenv("POSTGRES_DB")
	user := getenv("POSTGRES_USER")
	password := getenv("POSTGRES_PASSWORD")
	host := getenv("POSTGRES_HOST")
	port := getenv("POSTGRES_PORT")
	if host == "" || dbName == "" {
		return ""
	}
	if port == "" {
		port = defaultPort
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
