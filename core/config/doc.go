// Package config loads the UCS configuration.
//
// Sources, highest precedence first:
//   - environment variables, after loading an optional .env file with godotenv
//   - an optional ucs.yaml (or .toml, .json) file
//   - the `default` struct tags of each section
//
// Every key maps to an upper-case variable: storage.access_key is read from
// STORAGE_ACCESS_KEY. The storage credentials and region also accept the
// standard AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_REGION names.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	client, err := storage.NewFromConfig(cfg.Storage, logg)
package config
