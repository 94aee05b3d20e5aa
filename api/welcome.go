package api

// Welcome is returned for requests without any path segment.
type Welcome struct {
	Message string `json:"message"`
	Usage   string `json:"usage"`
}

var Usage = Welcome{
	Message: "Welcome",
	Usage:   "Provide a path in the format /fuel/city",
}
