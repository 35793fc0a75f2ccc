// Package config loads runtime settings for the Car Simulator.
//
// The config package handles:
//   - Loading .env files
//   - Reading settings from the environment or a settings file
//   - Validating every setting before the game starts
//
// Settings cover infrastructure only: where the driver profile comes from,
// how long to wait for it, which fallback identity to use, log level, and the
// optional telemetry server and ngrok tunnel. Fuel, fatigue and menu rules
// are fixed in the engine package.
//
// Usage:
//
//	if err := config.LoadDotEnv(); err != nil {
//		log.Warn("ignoring .env", "err", err)
//	}
//
//	settings, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Environment Variables:
//
//	CARSIM_LOG_LEVEL         debug, info, warn (default) or error
//	CARSIM_PROVIDER_URL      profile endpoint (default https://randomuser.me/api/)
//	CARSIM_PROVIDER_TIMEOUT  lookup timeout (default 5s)
//	CARSIM_FALLBACK          static (default) or pool
//	CARSIM_OFFLINE           skip the network entirely
//	CARSIM_TELEMETRY_ADDR    host:port for the read-only telemetry server
//	NGROK_ENABLED            tunnel telemetry through ngrok
//	NGROK_AUTHTOKEN          ngrok auth token (NGROK_AUTH_TOKEN also accepted)
//	NGROK_DOMAIN             custom ngrok domain
package config
