package securerequests

import "fmt"

// Candidate pools for the generated browser fingerprint. Each generation
// draws one entry from each pool with a uniform choice.
var (
	uaPlatforms = []string{
		"Windows NT 10.0; Win64; x64",
		"Windows NT 6.1; Win64; x64",
		"Macintosh; Intel Mac OS X 10_15_7",
		"Macintosh; Intel Mac OS X 11_2_3",
		"X11; Linux x86_64",
		"X11; Ubuntu; Linux x86_64",
	}

	secCHUAPlatforms = []string{"Windows", "Macintosh", "X11"}

	chromeMajors = []int{
		110, 111, 112, 113, 114, 115, 116, 117,
		118, 119, 120, 121, 122, 123, 124, 125,
	}
)

// GenerateHeaders produces a default header set resembling a modern Chrome
// fingerprint. Output varies between calls unless the client's choice
// function is pinned (see WithRandInt). Custom headers override matching
// defaults; keys outside the default template are appended as-is.
func (c *Client) GenerateHeaders(custom map[string]string) map[string]string {
	platform := uaPlatforms[c.randInt(len(uaPlatforms))]
	secPlatform := secCHUAPlatforms[c.randInt(len(secCHUAPlatforms))]
	major := chromeMajors[c.randInt(len(chromeMajors))]

	headers := map[string]string{
		HeaderAccept.String():      "application/x-www-form-urlencoded",
		HeaderContentType.String(): "application/x-www-form-urlencoded",
		HeaderSecCHUA.String(): fmt.Sprintf(
			`"Google Chrome";v="%d", "Chromium";v="%d", "Not.A/Brand";v="24"`, major, major),
		HeaderSecCHUAMobile.String():   "?0",
		HeaderSecCHUAPlatform.String(): fmt.Sprintf("%q", secPlatform),
		HeaderSecFetchDest.String():    "empty",
		HeaderSecFetchMode.String():    "cors",
		HeaderSecFetchSite.String():    "same-site",
		HeaderUserAgent.String(): fmt.Sprintf(
			"Mozilla/5.0 (%s) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.0.0 Safari/537.36",
			platform, major),
	}
	for k, v := range custom {
		headers[k] = v
	}
	return headers
}

// SetHeader sets a single header in the client's header set.
func (c *Client) SetHeader(key HeaderKey, value string) {
	c.headers[string(key)] = value
}

// RemoveHeader removes a single header from the client's header set.
func (c *Client) RemoveHeader(key HeaderKey) {
	delete(c.headers, string(key))
}

// SetHeaders updates multiple headers at once.
func (c *Client) SetHeaders(headers map[HeaderKey]string) {
	for key, value := range headers {
		c.headers[string(key)] = value
	}
}

// RemoveHeaders removes multiple headers at once.
func (c *Client) RemoveHeaders(keys []HeaderKey) {
	for _, key := range keys {
		delete(c.headers, string(key))
	}
}

// Headers returns a copy of the client's current header set.
func (c *Client) Headers() map[string]string {
	out := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		out[k] = v
	}
	return out
}
