package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/envkit/env"
	"github.com/eugenenazirov/envkit/internal/logging"
)

// report is the YAML document printed to stdout.
type report struct {
	Mode       string            `yaml:"mode"`
	Local      bool              `yaml:"local"`
	APIVersion string            `yaml:"api_version"`
	Keys       map[string]string `yaml:"keys,omitempty"`
}

// reportOptions maps CLI flags onto report generation.
type reportOptions struct {
	prefix string
	minor  bool
	patch  bool
	keys   []string
}

func main() {
	app := kingpin.New("envinfo", "Inspect the resolved process environment: execution mode, API version token, and selected keys")
	envFile := app.Flag("env-file", "Path to a .env file merged under the OS environment").String()
	basePathEnv := app.Flag("base-path-env", "Load .env from the directory named by BASE_PATH").Bool()
	prefix := app.Flag("prefix", "Prefix for the API version token").Default("v").String()
	minor := app.Flag("minor", "Include the minor component in the API version token").Bool()
	patch := app.Flag("patch", "Include the minor and patch components in the API version token").Bool()
	keys := app.Flag("key", "Environment key to include in the report (repeatable)").Strings()
	quiet := app.Flag("quiet", "Suppress diagnostic logging").Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	storeOpts := []env.Option{}
	if *envFile != "" {
		storeOpts = append(storeOpts, env.WithDotenv(*envFile))
	}
	if *basePathEnv {
		storeOpts = append(storeOpts, env.WithDotenvDir())
	}
	store := env.New(storeOpts...)

	logger := zap.NewNop()
	if !*quiet {
		l, err := logging.New(store.IsLocal())
		if err != nil {
			panic(fmt.Sprintf("failed to initialize logger: %v", err))
		}
		logger = l
	}
	defer func() {
		_ = logger.Sync()
	}()

	rep := buildReport(store, reportOptions{
		prefix: *prefix,
		minor:  *minor,
		patch:  *patch,
		keys:   *keys,
	})

	logger.Info("environment resolved",
		zap.String("mode", rep.Mode),
		zap.String("api_version", rep.APIVersion),
		zap.Int("store_keys", store.Len()),
	)

	out, err := yaml.Marshal(rep)
	if err != nil {
		logger.Fatal("failed to encode report", zap.Error(err))
	}
	fmt.Print(string(out))
}

// buildReport resolves the mode, API version token, and requested keys from
// the store. It never fails: unknown keys appear with empty values.
func buildReport(store *env.Store, opts reportOptions) report {
	versionOpts := []env.VersionOption{env.WithPrefix(opts.prefix)}
	switch {
	case opts.patch:
		versionOpts = append(versionOpts, env.WithPatch())
	case opts.minor:
		versionOpts = append(versionOpts, env.WithMinor())
	}

	rep := report{
		Mode:       store.Mode(),
		Local:      store.IsLocal(),
		APIVersion: store.APIVersion(versionOpts...),
	}

	if len(opts.keys) > 0 {
		rep.Keys = make(map[string]string, len(opts.keys))
		for _, key := range opts.keys {
			rep.Keys[key] = store.Get(key, "")
		}
	}
	return rep
}
