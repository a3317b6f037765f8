// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"sort"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoCatalog struct {
	db      *dynamo.DB
	renders dynamo.Table
}

func NewDynamoCatalog(session *session.Session, stage string) (*DynamoCatalog, error) {
	catalog := &DynamoCatalog{db: dynamo.NewFromIface(dynamodb.New(session))}
	catalog.renders = catalog.db.Table("caldeira-" + stage + "-renders")
	return catalog, nil
}

func (catalog *DynamoCatalog) PutRender(render Render) error {
	return catalog.renders.Put(render).Run()
}

func (catalog *DynamoCatalog) ReadRenders() (renders []Render, err error) {
	err = catalog.renders.Scan().All(&renders)
	sortRenders(renders)
	return
}

func sortRenders(renders []Render) {
	sort.SliceStable(renders, func(i, j int) bool {
		a, b := renders[i], renders[j]
		if a.Created != b.Created {
			return a.Created > b.Created
		}
		return a.Key < b.Key
	})
}
