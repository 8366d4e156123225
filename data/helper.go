package data

import (
	"errors"
	"fmt"
	"reflect"
)

var NotFoundError = errors.New("not found")

var NilEntityError = errors.New("entity is nil")

func findID[T any, ID comparable](entity T) (ID, bool) {
	valueOfEntity := reflect.ValueOf(entity)
	if valueOfEntity.Type().Kind() == reflect.Pointer {
		valueOfEntity = reflect.Indirect(valueOfEntity)
	}
	value := valueOfEntity.FieldByName("ID")
	if !value.IsValid() {
		panic(fmt.Sprintf("Entity '%s' has not ID field", valueOfEntity.Type()))
	}
	if !value.Comparable() {
		panic(fmt.Sprintf("ID field type '%s' of '%s' is not comparable", value.Type(), valueOfEntity.Type()))
	}
	v := value.Interface()
	switch id := v.(type) {
	case ID:
		return id, value.IsZero()
	default:
		panic("Entity's ID field type is different from ID type constraint")
	}
}

func typeName[T any]() string {
	var entity T
	return reflect.TypeOf(entity).Name()
}
