package launch

import "os"

// Environment variables exported to the child process alongside the
// inherited environment.
const (
	// EnvAspNetCoreEnvironment selects the hosting environment of the
	// application under test.
	EnvAspNetCoreEnvironment = "ASPNETCORE_ENVIRONMENT"
	// EnvLauncherPath tells the host where the site's launcher lives,
	// relative to the site root.
	EnvLauncherPath = "LAUNCHER_PATH"
)

// Args renders the ordered argument list understood by the host executable:
// config path, site name, app-pool name. Segments with empty values are
// omitted. The app-pool value is wrapped in quotes because pool names
// commonly contain spaces ("Clr4IntegratedAppPool" does not, ".NET v4.5"
// does); the host strips the quotes itself.
func (c Config) Args() []string {
	args := make([]string, 0, 3)
	if c.ConfigPath != "" {
		args = append(args, "/config:"+c.ConfigPath)
	}
	if c.Site != "" {
		args = append(args, "/site:"+c.Site)
	}
	if c.AppPool != "" {
		args = append(args, `"/apppool:`+c.AppPool+`"`)
	}
	return args
}

// Env returns the child process environment: the parent's environment with
// the two host variables appended. The inherited set is never replaced.
func (c Config) Env() []string {
	c = c.WithDefaults()
	env := os.Environ()
	return append(env,
		EnvAspNetCoreEnvironment+"="+c.Environment,
		EnvLauncherPath+"="+c.LauncherPath,
	)
}
