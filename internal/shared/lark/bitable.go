package lark

import (
	"context"
	"fmt"
	"net/url"
)

// =============================================================================
// 多维表格（Bitable）操作
// appToken是多维表格应用token，tableID是数据表ID
// =============================================================================

// CreateRecord 在数据表中新增一条记录
// fields的key为表格列名（人类可读），value为列类型对应的值
func (c *Client) CreateRecord(ctx context.Context, appToken, tableID string, fields map[string]interface{}) (*BitableRecord, error) {
	path := fmt.Sprintf("/open-apis/bitable/v1/apps/%s/tables/%s/records", appToken, tableID)

	var result bitableRecordResponse
	if err := c.doRequest(ctx, "POST", path, map[string]interface{}{"fields": fields}, &result); err != nil {
		return nil, err
	}

	return &result.Data.Record, nil
}

// ListRecords 拉取数据表全部记录，自动翻页
func (c *Client) ListRecords(ctx context.Context, appToken, tableID string) ([]BitableRecord, error) {
	var records []BitableRecord
	pageToken := ""

	for {
		path := fmt.Sprintf("/open-apis/bitable/v1/apps/%s/tables/%s/records?page_size=500", appToken, tableID)
		if pageToken != "" {
			path += "&page_token=" + url.QueryEscape(pageToken)
		}

		var result bitableListResponse
		if err := c.doRequest(ctx, "GET", path, nil, &result); err != nil {
			return nil, err
		}

		records = append(records, result.Data.Items...)

		if !result.Data.HasMore || result.Data.PageToken == "" {
			break
		}
		pageToken = result.Data.PageToken
	}

	return records, nil
}

// UpdateRecord 更新数据表中的一条记录（仅更新传入的字段）
func (c *Client) UpdateRecord(ctx context.Context, appToken, tableID, recordID string, fields map[string]interface{}) (*BitableRecord, error) {
	path := fmt.Sprintf("/open-apis/bitable/v1/apps/%s/tables/%s/records/%s", appToken, tableID, recordID)

	var result bitableRecordResponse
	if err := c.doRequest(ctx, "PUT", path, map[string]interface{}{"fields": fields}, &result); err != nil {
		return nil, err
	}

	return &result.Data.Record, nil
}
