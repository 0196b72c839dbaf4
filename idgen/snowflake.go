package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"

	"warehouse-app/types"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() types.SnowflakeID {
	return types.SnowflakeID(node.Generate().Int64())
}
