// compileinfoprint is imported for the side effect of printing build info to
// os.Stderr at startup.
package compileinfoprint

import "github.com/gwaskit/mrprep/compileinfo"

func init() {
	compileinfo.Banner()
}
