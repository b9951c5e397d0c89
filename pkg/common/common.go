package common

import (
	"math/rand"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
)

var snowflakeNode *snowflake.Node

func init() {
	rand.Seed(time.Now().UnixNano())
	node, err := snowflake.NewNode(rand.Int63n(1023))
	if err != nil {
		panic(err)
	}
	snowflakeNode = node
}

// UUIDstr returns a snowflake id in its string form.
func UUIDstr() string {
	return snowflakeNode.Generate().String()
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IfEmptyStr returns defval when src is empty.
func IfEmptyStr(src string, defval string) string {
	if src == "" {
		return defval
	}
	return src
}
