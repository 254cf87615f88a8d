package repositories

import "context"

// BuildRepository abstracts the external build invocation. Given a descriptor
// path and an argument list it runs the project's build process against that
// descriptor and reports success or failure.
type BuildRepository interface {
	// Run invokes the build in dir against the given descriptor file.
	Run(ctx context.Context, dir, descriptorPath string, args []string) error
}
