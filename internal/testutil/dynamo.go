// Package testutil provides in-memory fakes for the AWS clients so store
// and handler tests run without any AWS dependency. The DynamoDB fake only
// understands the expression shapes this codebase actually issues.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoFake is a minimal in-memory stand-in for DynamoDB. Register each
// table with AddTable before use so the fake knows the partition key.
type DynamoFake struct {
	mu     sync.Mutex
	pkAttr map[string]string
	tables map[string]map[string]map[string]types.AttributeValue
}

func NewDynamoFake() *DynamoFake {
	return &DynamoFake{
		pkAttr: map[string]string{},
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

// AddTable registers a table and its partition key attribute.
func (f *DynamoFake) AddTable(name, pk string) *DynamoFake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pkAttr[name] = pk
	f.tables[name] = map[string]map[string]types.AttributeValue{}
	return f
}

// Len reports the number of items stored in a table.
func (f *DynamoFake) Len(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[table])
}

// RawItem returns the stored item for a partition key value, or nil.
func (f *DynamoFake) RawItem(table, pk string) map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tables[table][pk]
}

func (f *DynamoFake) pkOf(table string, item map[string]types.AttributeValue) (string, error) {
	attr, ok := f.pkAttr[table]
	if !ok {
		return "", fmt.Errorf("unknown table %q", table)
	}
	v, ok := item[attr].(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("missing partition key %q", attr)
	}
	return v.Value, nil
}

func (f *DynamoFake) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	pk, err := f.pkOf(table, params.Item)
	if err != nil {
		return nil, err
	}
	if params.ConditionExpression != nil {
		existing := f.tables[table][pk]
		ok, err := evalCondition(existing, *params.ConditionExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.tables[table][pk] = copyItem(params.Item)
	return &dyn.PutItemOutput{}, nil
}

func (f *DynamoFake) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	pk, err := f.pkOf(table, params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := f.tables[table][pk]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *DynamoFake) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	pk, err := f.pkOf(table, params.Key)
	if err != nil {
		return nil, err
	}
	item, exists := f.tables[table][pk]
	if params.ConditionExpression != nil {
		ok, err := evalCondition(item, *params.ConditionExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	if !exists {
		// UpdateItem upserts: start from the key attributes
		item = copyItem(params.Key)
	}
	if params.UpdateExpression != nil {
		if err := applyUpdate(item, *params.UpdateExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues); err != nil {
			return nil, err
		}
	}
	f.tables[table][pk] = item
	out := &dyn.UpdateItemOutput{}
	if params.ReturnValues == types.ReturnValueAllNew || params.ReturnValues == types.ReturnValueUpdatedNew {
		out.Attributes = copyItem(item)
	}
	return out, nil
}

func (f *DynamoFake) DeleteItem(ctx context.Context, params *dyn.DeleteItemInput, optFns ...func(*dyn.Options)) (*dyn.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	pk, err := f.pkOf(table, params.Key)
	if err != nil {
		return nil, err
	}
	item := f.tables[table][pk]
	if params.ConditionExpression != nil {
		ok, err := evalCondition(item, *params.ConditionExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	delete(f.tables[table], pk)
	return &dyn.DeleteItemOutput{}, nil
}

func (f *DynamoFake) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	if _, ok := f.tables[table]; !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	var items []map[string]types.AttributeValue
	for _, item := range f.tables[table] {
		if params.FilterExpression != nil {
			ok, err := evalCondition(item, *params.FilterExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		items = append(items, project(item, params.ProjectionExpression))
		if params.Limit != nil && len(items) >= int(*params.Limit) {
			break
		}
	}

	out := &dyn.ScanOutput{Count: int32(len(items))}
	if params.Select != types.SelectCount {
		out.Items = items
	}
	return out, nil
}

func (f *DynamoFake) BatchWriteItem(ctx context.Context, params *dyn.BatchWriteItemInput, optFns ...func(*dyn.Options)) (*dyn.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for table, writes := range params.RequestItems {
		if _, ok := f.tables[table]; !ok {
			return nil, fmt.Errorf("unknown table %q", table)
		}
		if len(writes) > 25 {
			return nil, errors.New("batch exceeds 25 write requests")
		}
		for _, w := range writes {
			switch {
			case w.PutRequest != nil:
				pk, err := f.pkOf(table, w.PutRequest.Item)
				if err != nil {
					return nil, err
				}
				f.tables[table][pk] = copyItem(w.PutRequest.Item)
			case w.DeleteRequest != nil:
				pk, err := f.pkOf(table, w.DeleteRequest.Key)
				if err != nil {
					return nil, err
				}
				delete(f.tables[table], pk)
			}
		}
	}
	return &dyn.BatchWriteItemOutput{}, nil
}

// evalCondition handles the single comparison form "attr = :val" (attr may
// be a #name placeholder). A nil item never matches.
func evalCondition(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) (bool, error) {
	parts := strings.SplitN(expr, "=", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("unsupported condition %q", expr)
	}
	attr := resolveName(strings.TrimSpace(parts[0]), names)
	ref := strings.TrimSpace(parts[1])
	want, ok := values[ref]
	if !ok {
		return false, fmt.Errorf("missing expression value %q", ref)
	}
	if item == nil {
		return false, nil
	}
	return attrEqual(item[attr], want), nil
}

// applyUpdate handles "SET a = <operand>[, b = <operand>...]" where an
// operand is ":val", "if_not_exists(attr, :val)" or a "+"-joined pair of
// those (numeric add).
func applyUpdate(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	expr = strings.TrimSpace(expr)
	if !strings.HasPrefix(expr, "SET ") {
		return fmt.Errorf("unsupported update expression %q", expr)
	}
	for _, clause := range splitTopLevel(strings.TrimPrefix(expr, "SET ")) {
		parts := strings.SplitN(clause, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("unsupported update clause %q", clause)
		}
		attr := resolveName(strings.TrimSpace(parts[0]), names)
		rhs := strings.TrimSpace(parts[1])

		if lhs, inc, found := cutOperator(rhs); found {
			a, err := resolveOperand(item, lhs, names, values)
			if err != nil {
				return err
			}
			b, err := resolveOperand(item, inc, names, values)
			if err != nil {
				return err
			}
			sum, err := addNumbers(a, b)
			if err != nil {
				return err
			}
			item[attr] = sum
			continue
		}

		v, err := resolveOperand(item, rhs, names, values)
		if err != nil {
			return err
		}
		item[attr] = v
	}
	return nil
}

// splitTopLevel splits clauses on commas outside parentheses, so
// if_not_exists(attr, :v) stays intact.
func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		out = append(out, rest)
	}
	return out
}

func cutOperator(rhs string) (string, string, bool) {
	// split on top-level " + " only; if_not_exists args never contain one
	if i := strings.LastIndex(rhs, " + "); i >= 0 {
		return strings.TrimSpace(rhs[:i]), strings.TrimSpace(rhs[i+3:]), true
	}
	return "", "", false
}

func resolveOperand(item map[string]types.AttributeValue, op string, names map[string]string, values map[string]types.AttributeValue) (types.AttributeValue, error) {
	if strings.HasPrefix(op, ":") {
		v, ok := values[op]
		if !ok {
			return nil, fmt.Errorf("missing expression value %q", op)
		}
		return v, nil
	}
	if strings.HasPrefix(op, "if_not_exists(") && strings.HasSuffix(op, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(op, "if_not_exists("), ")")
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("unsupported if_not_exists %q", op)
		}
		attr := resolveName(strings.TrimSpace(parts[0]), names)
		if existing, ok := item[attr]; ok && existing != nil {
			return existing, nil
		}
		return resolveOperand(item, strings.TrimSpace(parts[1]), names, values)
	}
	return nil, fmt.Errorf("unsupported operand %q", op)
}

func addNumbers(a, b types.AttributeValue) (types.AttributeValue, error) {
	an, ok := a.(*types.AttributeValueMemberN)
	if !ok {
		return nil, fmt.Errorf("operand %v is not numeric", a)
	}
	bn, ok := b.(*types.AttributeValueMemberN)
	if !ok {
		return nil, fmt.Errorf("operand %v is not numeric", b)
	}
	af, err := strconv.ParseFloat(an.Value, 64)
	if err != nil {
		return nil, err
	}
	bf, err := strconv.ParseFloat(bn.Value, 64)
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(af+bf, 'f', -1, 64)}, nil
}

func resolveName(attr string, names map[string]string) string {
	if strings.HasPrefix(attr, "#") {
		if real, ok := names[attr]; ok {
			return real
		}
	}
	return attr
}

func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	default:
		return false
	}
}

func project(item map[string]types.AttributeValue, projection *string) map[string]types.AttributeValue {
	if projection == nil {
		return copyItem(item)
	}
	out := map[string]types.AttributeValue{}
	for _, attr := range strings.Split(*projection, ",") {
		attr = strings.TrimSpace(attr)
		if v, ok := item[attr]; ok {
			out[attr] = v
		}
	}
	return out
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
