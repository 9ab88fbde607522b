// ABOUTME: Dependencies container for injecting shared infrastructure
// ABOUTME: Passed to service constructors instead of individual arguments

package interfaces

// Dependencies holds the shared infrastructure handed to services
type Dependencies struct {
	Cache       Cache
	HTTPClient  HTTPClient
	Logger      Logger
	Credentials CredentialSource
	Jobs        JobStorage
	Results     ResultStorage
	Datasets    DatasetStorage
}
