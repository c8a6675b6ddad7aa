package config

type InternalConfig struct {
	App        App
	JWT        AppJWT
	Auth       AppAuth
	Translator AppTranslator
	RabbitMQ   AppRabbitMQ
	MongoDB    AppMongoDB
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	URL                       string
	EndpointPrefix            string
	AllowedOrigins            []string
	StorageDriver             string
	MailerDriver              string
	SeedDemoUsers             bool
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeoutInSeconds  int
	RequestTimeoutInSeconds   int
}

type AppJWT struct {
	Secret           string
	ExpTimeInMinutes int
}

type AppAuth struct {
	SessionExpTimeInHours                   int
	ForgotPasswordTokenExpiredTimeInMinutes int
	LoginMaxAttempts                        int
	LoginAttemptWindowInSeconds             int
}

type AppTranslator struct {
	Key               string
	Region            string
	Endpoint          string
	RequestsPerSecond int
	Burst             int
	TimeoutInSeconds  int
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppMongoDB struct {
	DbName string
}
