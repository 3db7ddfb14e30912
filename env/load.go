package env

import (
	"os"

	"github.com/joho/godotenv"
)

const dotenvFile = ".env"

// readDotenv parses the .env-format file at path. Missing or malformed files
// contribute nothing; dotenv loading never fails store construction.
func readDotenv(path string) map[string]string {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil
	}
	return values
}

// dotenvDir resolves the directory searched by WithDotenvDir: BASE_PATH from
// the OS environment when set, the current working directory otherwise. The
// OS environment is consulted directly because the store is still being
// seeded at this point.
func dotenvDir() string {
	if base := os.Getenv(basePathKey); base != "" {
		return base
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
