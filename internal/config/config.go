package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tokengate-project/tokengate/internal/args"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server     ServerConfig
	Bearer     BearerConfig
	Verifier   VerifierConfig
	Kv         KvConfig
	Database   DatabaseConfig
	Revocation RevocationConfig
}

type ServerConfig struct {
	Port           int
	Host           string
	AllowedOrigins []string
}

type BearerConfig struct {
	HeaderName                    string
	AllowUriQueryParameter        bool
	AllowFormEncodedBodyParameter bool
}

type VerifierMode string

const (
	VerifierModeOidc VerifierMode = "oidc"
	VerifierModeJwt  VerifierMode = "jwt"
)

type RoleClaimFormat string

const (
	RoleClaimFormatArray          RoleClaimFormat = "array"
	RoleClaimFormatSpaceSeparated RoleClaimFormat = "space-separated"
	RoleClaimFormatCommaSeparated RoleClaimFormat = "comma-separated"
)

type VerifierConfig struct {
	Mode            VerifierMode
	RoleClaim       string
	RoleClaimFormat RoleClaimFormat
	RoleMapping     map[string]string
	Oidc            OidcVerifierConfig
	Jwt             JwtVerifierConfig
}

type OidcVerifierConfig struct {
	Issuer   string
	ClientId string
}

type JwtVerifierConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

type KvMode string

const (
	KvModeInMemory KvMode = "memory"
	KvModeRedis    KvMode = "redis"
)

type KvConfig struct {
	Mode  KvMode
	Redis struct {
		Host     string
		Port     int
		Username string
		Password string
		Database int
	}
}

type DatabaseMode string

const (
	DatabaseModeInMemory DatabaseMode = "memory"
	DatabaseModePostgres DatabaseMode = "postgres"
)

type PostgresConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SslMode  string
}

type DatabaseConfig struct {
	Mode     DatabaseMode
	Postgres PostgresConfig
}

type RevocationConfig struct {
	Ttl time.Duration
}

var C Config

var k = koanf.New(".")

func Init() {
	if args.ConfigFilePath() != "" {
		_, err := os.Stat(args.ConfigFilePath())
		if err != nil {
			panic(fmt.Errorf("failed to stat config file: %w", err))
		}

		err = k.Load(file.Provider(args.ConfigFilePath()), yaml.Parser())
		if err != nil {
			panic(fmt.Errorf("failed to load config file: %w", err))
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: "TOKENGATE_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "TOKENGATE_")), "_", ".")

			if strings.Contains(v, " ") {
				return k, strings.Split(v, " ")
			}

			return k, v
		},
	}), nil)
	if err != nil {
		panic(fmt.Errorf("failed to load env provider: %w", err))
	}

	err = k.Unmarshal("", &C)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal config: %w", err))
	}

	setDefaultsOrPanic()
}

func setDefaultsOrPanic() {
	setServerDefaultsOrPanic()
	setBearerDefaults()
	setVerifierDefaultsOrPanic()
	setKvDefaultsOrPanic()
	setDatabaseDefaultsOrPanic()
	setRevocationDefaults()
}

func setServerDefaultsOrPanic() {
	if C.Server.Host == "" {
		if args.IsProduction() {
			panic("Server.Host must be set in production.")
		}

		C.Server.Host = "localhost"
	}

	if C.Server.Port == 0 {
		C.Server.Port = 8080
	}
}

func setBearerDefaults() {
	if C.Bearer.HeaderName == "" {
		C.Bearer.HeaderName = "Authorization"
	}
}

func setVerifierDefaultsOrPanic() {
	if C.Verifier.Mode == "" {
		panic("Verifier.Mode must be set to oidc or jwt.")
	}

	if C.Verifier.RoleClaim == "" {
		C.Verifier.RoleClaim = "roles"
	}

	if C.Verifier.RoleClaimFormat == "" {
		C.Verifier.RoleClaimFormat = RoleClaimFormatArray
	}

	switch C.Verifier.RoleClaimFormat {
	case RoleClaimFormatArray, RoleClaimFormatSpaceSeparated, RoleClaimFormatCommaSeparated:
		break

	default:
		panic(fmt.Errorf("unsupported role claim format: %s", C.Verifier.RoleClaimFormat))
	}

	switch C.Verifier.Mode {
	case VerifierModeOidc:
		if C.Verifier.Oidc.Issuer == "" {
			panic("Verifier.Oidc.Issuer must be set to the oidc issuer url.")
		}

		if C.Verifier.Oidc.ClientId == "" {
			panic("Verifier.Oidc.ClientId must be set to the oidc client id.")
		}

	case VerifierModeJwt:
		if C.Verifier.Jwt.Secret == "" {
			panic("Verifier.Jwt.Secret must be set to the shared signing secret.")
		}

		if C.Verifier.Jwt.Issuer == "" {
			panic("Verifier.Jwt.Issuer must be set to the expected issuer.")
		}

	default:
		panic(fmt.Errorf("unsupported verifier mode: %s", C.Verifier.Mode))
	}
}

func setKvDefaultsOrPanic() {
	if C.Kv.Mode == "" {
		if args.IsProduction() {
			panic("Kv.Mode must be set in production.")
		}

		C.Kv.Mode = KvModeInMemory
	}

	switch C.Kv.Mode {
	case KvModeInMemory:
		return

	case KvModeRedis:
		setKvRedisDefaultsOrPanic()

	default:
		panic(fmt.Errorf("unsupported kv mode: %s", C.Kv.Mode))
	}
}

func setKvRedisDefaultsOrPanic() {
	if C.Kv.Redis.Host == "" {
		if args.IsProduction() {
			panic("Kv.Redis.Host must be set in production.")
		}

		C.Kv.Redis.Host = "localhost"
	}

	if C.Kv.Redis.Port == 0 {
		C.Kv.Redis.Port = 6379
	}
}

func setDatabaseDefaultsOrPanic() {
	if C.Database.Mode == "" {
		if args.IsProduction() {
			panic("Database.Mode must be set in production.")
		}

		C.Database.Mode = DatabaseModeInMemory
	}

	switch C.Database.Mode {
	case DatabaseModeInMemory:
		return

	case DatabaseModePostgres:
		setDatabasePostgresDefaultsOrPanic()

	default:
		panic(fmt.Errorf("unsupported database mode: %s", C.Database.Mode))
	}
}

func setDatabasePostgresDefaultsOrPanic() {
	if C.Database.Postgres.Host == "" {
		if args.IsProduction() {
			panic("Database.Postgres.Host must be set in production.")
		}

		C.Database.Postgres.Host = "localhost"
	}

	if C.Database.Postgres.Port == 0 {
		C.Database.Postgres.Port = 5432
	}

	if C.Database.Postgres.Database == "" {
		panic("Database.Postgres.Database must be set.")
	}

	if C.Database.Postgres.Username == "" {
		panic("Database.Postgres.Username must be set.")
	}

	if C.Database.Postgres.SslMode == "" {
		C.Database.Postgres.SslMode = "disable"
	}
}

func setRevocationDefaults() {
	if C.Revocation.Ttl == 0 {
		C.Revocation.Ttl = 24 * time.Hour
	}
}
