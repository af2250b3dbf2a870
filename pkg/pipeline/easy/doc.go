// Package easy is a templating layer over the pipeline package for build
// scripts. It resolves option values from explicit settings, environment
// variables and YAML config files, pre-creates the Default object from those
// options, and offers get-or-create helpers for the common object shapes so
// a pipeline definition can be written in a handful of lines:
//
//	func setup(p *easy.Pipeline) error {
//		activity, err := p.ShellCommandActivity("HelloWorldActivity")
//		if err != nil {
//			return err
//		}
//
//		return activity.Set("command", "echo hello world")
//	}
//
//	func main() {
//		if err := easy.Run(setup); err != nil {
//			log.Fatal(err)
//		}
//	}
package easy
