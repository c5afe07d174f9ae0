// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// AppID 业务模块编号，用于区分不同模块生成的序列号
type AppID uint

const (
	AppDiagnostic AppID = iota
	AppForum
	AppSolution
)

const (
	maxNode uint = 31
	maxApp  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedApp  = errors.New("app超出限制")
	ErrUnknownApp = errors.New("未知的app")
)

type Generator interface {
	Generate(appid AppID) (ID, error)
}

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

type CustomGenerator struct {
	// 键为 appid
	nodes syncx.Map[AppID, *snowflake.Node]
}

// NewCustomGenerator node 表示第几个节点，apps 表示有几个业务模块，从 0 开始编号
func NewCustomGenerator(nodeId uint, apps uint) (*CustomGenerator, error) {
	gen := &CustomGenerator{}
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if apps > maxApp+1 {
		return nil, fmt.Errorf("%w", ErrExceedApp)
	}
	for i := 0; i < int(apps); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		gen.nodes.Store(AppID(i), n)
	}
	return gen, nil
}

type ID int64

func (c *CustomGenerator) Generate(appid AppID) (ID, error) {
	n, ok := c.nodes.Load(appid)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownApp)
	}
	id := n.Generate()
	return ID(id), nil
}

func (f ID) AppID() AppID {
	node := snowflake.ID(f).Node()
	return AppID(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}

func (f ID) String() string {
	return snowflake.ID(f).String()
}
