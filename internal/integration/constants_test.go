package integration_test

const (
	cacheImageName = "redis:7"

	TestAccountId      = 42
	OtherTestAccountId = 7
)
