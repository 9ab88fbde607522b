// ABOUTME: Response DTOs for the ranking discovery endpoint
// ABOUTME: Includes the provider's remaining-quota report

package responses

// DiscoveryResponse is returned after a discovery call. Rows replace any
// previously displayed discovery set.
type DiscoveryResponse struct {
	Rows    []DiscoveryRowResponse `json:"rows"`
	Dropped int                    `json:"dropped"`

	// Remaining is the provider's quota counter; null when unlimited
	Remaining *int `json:"remaining"`

	// Unlimited is true when the provider reports no quota
	Unlimited bool `json:"unlimited"`
}
