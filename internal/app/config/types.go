package config

type (
	InternalConfig struct {
		App           App
		MemberService MemberService
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeout          int
		RequestTimeoutInSeconds  int
		CareEventQueue           string
		MaxBarriersPerSubmission int
		MaxCarePlansPerBarrier   int
	}

	MemberService struct {
		BaseUrl string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
