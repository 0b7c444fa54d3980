// Package all links every catalogued component into the binary. Importing
// it is the only wiring a build needs: each component package queues its
// registration callbacks from init(), and component.Init drains them at
// startup.
package all

import (
	_ "github.com/neunato/zed/components/button"
	_ "github.com/neunato/zed/components/commitlist"
	_ "github.com/neunato/zed/components/divider"
	_ "github.com/neunato/zed/components/facepile"
	_ "github.com/neunato/zed/components/tabbar"
	_ "github.com/neunato/zed/components/textinput"
	_ "github.com/neunato/zed/components/toast"
)
