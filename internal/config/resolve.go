package config

import "os"

// Defaults for unset fields.
const (
	DefaultAddr         = ":8000"
	DefaultModelPath    = "model.pkl"
	DefaultModelVersion = "v1"
	DefaultGitSHA       = "local"
	DefaultLogLevel     = "info"
)

// Environment variables read by FromEnv.
const (
	EnvModelPath    = "MODEL_PATH"
	EnvModelVersion = "MODEL_VERSION"
	EnvGitSHA       = "GIT_SHA"
	EnvAddr         = "MLSERVE_ADDR"
	EnvLogLevel     = "MLSERVE_LOG_LEVEL"
	EnvLogFile      = "MLSERVE_LOG_FILE"
)

// fieldSet records which labels were set to an empty value on purpose.
type fieldSet uint8

const (
	setModelPath fieldSet = 1 << iota
	setModelVersion
	setGitSHA
)

// FromEnv returns the fields set through the environment. lookup is
// os.LookupEnv in production. MODEL_PATH, MODEL_VERSION and GIT_SHA keep an
// empty value when the variable is present but empty.
func FromEnv(lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(k string) string {
		v, _ := lookup(k)
		return v
	}
	cfg := Config{
		Addr:     get(EnvAddr),
		LogLevel: get(EnvLogLevel),
		LogFile:  get(EnvLogFile),
	}
	for _, e := range []struct {
		key  string
		dst  *string
		flag fieldSet
	}{
		{EnvModelPath, &cfg.ModelPath, setModelPath},
		{EnvModelVersion, &cfg.ModelVersion, setModelVersion},
		{EnvGitSHA, &cfg.GitSHA, setGitSHA},
	} {
		if v, ok := lookup(e.key); ok {
			*e.dst = v
			if v == "" {
				cfg.explicit |= e.flag
			}
		}
	}
	return cfg
}

// Merge overlays the non-zero fields of over onto base.
func Merge(base, over Config) Config {
	if over.Addr != "" {
		base.Addr = over.Addr
	}
	if over.ModelPath != "" || over.explicit&setModelPath != 0 {
		base.ModelPath = over.ModelPath
		base.explicit = base.explicit&^setModelPath | over.explicit&setModelPath
	}
	if over.ModelVersion != "" || over.explicit&setModelVersion != 0 {
		base.ModelVersion = over.ModelVersion
		base.explicit = base.explicit&^setModelVersion | over.explicit&setModelVersion
	}
	if over.GitSHA != "" || over.explicit&setGitSHA != 0 {
		base.GitSHA = over.GitSHA
		base.explicit = base.explicit&^setGitSHA | over.explicit&setGitSHA
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.LogFile != "" {
		base.LogFile = over.LogFile
	}
	if over.MaxBodyBytes > 0 {
		base.MaxBodyBytes = over.MaxBodyBytes
	}
	if over.CORSEnabled {
		base.CORSEnabled = true
	}
	if len(over.CORSOrigins) > 0 {
		base.CORSOrigins = over.CORSOrigins
	}
	if len(over.CORSMethods) > 0 {
		base.CORSMethods = over.CORSMethods
	}
	if len(over.CORSHeaders) > 0 {
		base.CORSHeaders = over.CORSHeaders
	}
	return base
}

// WithDefaults fills every unset field.
func (c Config) WithDefaults() Config {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.ModelPath == "" && c.explicit&setModelPath == 0 {
		c.ModelPath = DefaultModelPath
	}
	if c.ModelVersion == "" && c.explicit&setModelVersion == 0 {
		c.ModelVersion = DefaultModelVersion
	}
	if c.GitSHA == "" && c.explicit&setGitSHA == 0 {
		c.GitSHA = DefaultGitSHA
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.CORSEnabled {
		if len(c.CORSOrigins) == 0 {
			c.CORSOrigins = []string{"*"}
		}
		if len(c.CORSMethods) == 0 {
			c.CORSMethods = []string{"GET", "POST", "OPTIONS"}
		}
		if len(c.CORSHeaders) == 0 {
			c.CORSHeaders = []string{"Content-Type"}
		}
	}
	return c
}
