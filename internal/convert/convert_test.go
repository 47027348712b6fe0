package convert

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"dto2zod/internal/diagnostic"
	"dto2zod/internal/dialect"
)

func TestConvert_JavaGolden(t *testing.T) {
	src := `
package com.acme.dto;

import java.util.*;

public enum Role { USER, ADMIN }

public class User {
    private String name;
    private Role role;
    private List<Address> addresses;
}

class Address {
    public String city;
}
`

	res := Convert(src)

	expected := `import { z } from 'zod'

// Role
export const RoleSchema = z.enum(['USER', 'ADMIN'])
export type Role = z.infer<typeof RoleSchema>

// User
export const UserSchema = z.object({
  name: z.string(),
  role: RoleSchema,
  addresses: z.array(z.lazy(() => AddressSchema))
})
export type User = z.infer<typeof UserSchema>

// Address
export const AddressSchema = z.object({
  city: z.string()
})
export type Address = z.infer<typeof AddressSchema>
`
	if diff := cmp.Diff(expected, res.Code); diff != "" {
		t.Errorf("generated code mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, res.Diagnostics)
}

func TestConvert_Java(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
	}{
		{
			name: "multiple declarators with bracket suffixes",
			src: `public class Many {
  public int a, b[], c[][];
  public String[] s1, s2[];
}`,
			contains: []string{
				"a: z.number().int()",
				"b: z.array(z.number().int())",
				"c: z.array(z.array(z.number().int()))",
				"s1: z.array(z.string())",
				"s2: z.array(z.array(z.string()))",
			},
		},
		{
			name: "renamed keys are quoted when needed",
			src: `public class U {
  @JsonProperty("full-name")
  public String fullName;
  @JsonProperty("2fa")
  public boolean twofa;
}`,
			contains: []string{"'full-name': z.string()", "'2fa': z.boolean()"},
		},
		{
			name: "validation refinements",
			src: `import jakarta.validation.constraints.*;
public class C {
  @Email public String email;
  @NotBlank public String code;
  @Positive public int qty;
  @Negative public int debt;
  @DecimalMin(value="1.5", inclusive=false)
  @DecimalMax(value="10.0", inclusive=true)
  public double price;
}`,
			contains: []string{
				"email: z.string().email()",
				"code: z.string().min(1)",
				"qty: z.number().int().positive()",
				"debt: z.number().int().negative()",
				"price: z.number().min(1.5, { inclusive: false }).max(10.0)",
			},
		},
		{
			name: "nested maps and enum keys",
			src: `import java.util.*;
public enum Status { NEW, DONE }
public class C {
  public Map<String, Map<String, Integer>> stats;
  public Map<Status, String> byStatus;
  public Map<String, List<Integer>> counts;
}`,
			contains: []string{
				"export const StatusSchema = z.enum(['NEW', 'DONE'])",
				"stats: z.record(z.string(), z.record(z.string(), z.number().int()))",
				"byStatus: z.record(z.string(), z.string())",
				"counts: z.record(z.string(), z.array(z.number().int()))",
			},
		},
		{
			name: "optional and nullable",
			src: `public class O {
  @Nullable private Optional<String> nick;
  private java.util.Optional<Integer> age;
}`,
			contains: []string{
				"nick: z.string().optional()",
				"age: z.number().int().optional()",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Convert(tt.src)

			assert.Empty(t, res.Diagnostics)

			for _, want := range tt.contains {
				assert.Contains(t, res.Code, want)
			}
		})
	}
}

func TestConvert_Kotlin(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
	}{
		{
			name:     "moshi rename",
			src:      "import com.squareup.moshi.Json\ndata class U(@Json(name=\"id\") val userId: String)",
			contains: []string{"id: z.string()"},
		},
		{
			name: "renamed keys are quoted when needed",
			src: `data class U(
  @Json(name="full-name") val fullName: String,
  @Json(name="2fa") val twofa: Boolean
)`,
			contains: []string{"'full-name': z.string()", "'2fa': z.boolean()"},
		},
		{
			name:     "nullable scalar",
			src:      "data class U(val age: Int?)",
			contains: []string{"age: z.number().int().optional()"},
		},
		{
			name:     "nullable collection as a whole",
			src:      "data class U(val tags: List<String>?)",
			contains: []string{"tags: z.array(z.string()).optional()"},
		},
		{
			name:     "date types are strings",
			src:      "data class E(val createdAt: java.time.Instant)",
			contains: []string{"createdAt: z.string()"},
		},
		{
			name: "enum class",
			src: `enum class Color(val rgb: Int) { RED(0xFF0000), GREEN(0x00FF00); fun hex() = rgb }
data class Paint(val color: Color)`,
			contains: []string{
				"export const ColorSchema = z.enum(['RED', 'GREEN'])",
				"color: ColorSchema",
			},
		},
		{
			name: "lazy reference",
			src: `data class Address(val city: String)
data class User(val address: Address)`,
			contains: []string{"address: z.lazy(() => AddressSchema)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Convert(tt.src)

			assert.Empty(t, res.Diagnostics)

			for _, want := range tt.contains {
				assert.Contains(t, res.Code, want)
			}
		})
	}
}

func TestConvert_KotlinBodyDuplicateIgnored(t *testing.T) {
	res := Convert(`data class U(val id: String) { val id: String = "dup" }`)

	assert.Equal(t, 1, strings.Count(res.Code, "id: z.string()"))
}

func TestConvert_MutualReferences(t *testing.T) {
	res := Convert(`
public class A { public B b; }
public class B { public A a; }
`)

	assert.Contains(t, res.Code, "b: z.lazy(() => BSchema)")
	assert.Contains(t, res.Code, "a: z.lazy(() => ASchema)")
	assert.Empty(t, res.Diagnostics)
}

func TestConvert_SharedClassOrderIndependent(t *testing.T) {
	sources := []string{
		"class Shared { int v; }\nclass A { Shared s; }\nclass B { Shared s; }",
		"class A { Shared s; }\nclass B { Shared s; }\nclass Shared { int v; }",
		"class A { Shared s; }\nclass Shared { int v; }\nclass B { Shared s; }",
	}

	for _, src := range sources {
		res := Convert(src)

		assert.Equal(t, 1, strings.Count(res.Code, "export const SharedSchema ="), src)
		assert.Equal(t, 1, strings.Count(res.Code, "export type Shared ="), src)
		assert.Equal(t, 2, strings.Count(res.Code, "s: z.lazy(() => SharedSchema)"), src)
		assert.Empty(t, res.Diagnostics, src)
	}
}

func TestConvert_Diagnostics(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		code     string
		expected diagnostic.List
	}{
		{
			name: "unknown type",
			src:  "public class X { public FooBar baz; }",
			code: "baz: z.unknown()",
			expected: diagnostic.List{
				diagnostic.Warn(diagnostic.CodeUnknownType, "Unknown type 'FooBar' → z.unknown()").At("X", "baz"),
			},
		},
		{
			name: "unknown type inside arrays",
			src:  "public class X { public Foo[][] grid; }",
			code: "grid: z.array(z.array(z.unknown()))",
			expected: diagnostic.List{
				diagnostic.Warn(diagnostic.CodeUnknownType, "Unknown type 'Foo' → z.unknown()").At("X", "grid"),
			},
		},
		{
			name: "unsupported map key",
			src:  "data class M(val weird: Map<Int, String>)",
			code: "weird: z.record(z.string(), z.unknown())",
			expected: diagnostic.List{
				diagnostic.Warn(diagnostic.CodeUnsupportedMapKey, "Map key 'Int' not supported → string keys used").At("M", "weird"),
			},
		},
		{
			name: "located at the declared name",
			src:  "public class R { @JsonProperty(\"x-y\") public Thing thing; }",
			code: "'x-y': z.unknown()",
			expected: diagnostic.List{
				diagnostic.Warn(diagnostic.CodeUnknownType, "Unknown type 'Thing' → z.unknown()").At("R", "thing"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Convert(tt.src)

			assert.Contains(t, res.Code, tt.code)
			assert.Equal(t, tt.expected, res.Diagnostics)
		})
	}
}

func TestConvert_Suggestions(t *testing.T) {
	res := Convert(`
public class Address { public String city; }
public class User { public Adress home; }
`)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, []string{"Address"}, res.Diagnostics[0].Suggestions)
}

func TestConvertWithOptions_DepthLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDepth = 3

	res := ConvertWithOptions("data class D(val deep: List<List<List<List<String>>>>)", opts)

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, diagnostic.LevelError, d.Level)
	assert.Equal(t, "Type nested too deeply: 'List<List<List<List<String>>>>'", d.Message)
	assert.Equal(t, &diagnostic.Location{Class: "D", Field: "deep"}, d.Where)
	assert.Contains(t, res.Code, "deep: z.array(z.array(z.array(z.array(z.unknown()))))")
}

func TestConvertWithOptions_DefaultDepthLimit(t *testing.T) {
	typ := strings.Repeat("List<", 100) + "String" + strings.Repeat(">", 100)

	res := Convert("public class D { public " + typ + " deep; }")

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, diagnostic.CodeTypeNestedTooDeeply, res.Diagnostics[0].Code)
	assert.True(t, res.Diagnostics.HasErrors())
}

func TestConvertWithOptions_TypeOverrides(t *testing.T) {
	opts := DefaultOptions()
	opts.TypeOverrides = map[string]string{
		"UUID":           "z.string().uuid()",
		"java.util.Date": "z.coerce.date()",
	}

	res := ConvertWithOptions(`
public class E {
  @NotBlank public UUID id;
  public java.util.Date at;
}`, opts)

	assert.Contains(t, res.Code, "id: z.string().uuid().min(1)")
	assert.Contains(t, res.Code, "at: z.coerce.date()")
	assert.Empty(t, res.Diagnostics)
}

func TestConvertWithOptions_ForcedDialect(t *testing.T) {
	src := "data class U(val age: Int?)"

	opts := DefaultOptions()
	opts.Dialect = dialect.ChoiceJava

	res := ConvertWithOptions(src, opts)
	assert.Equal(t, "import { z } from 'zod'\n", res.Code)

	opts.Dialect = dialect.ChoiceKotlin
	res = ConvertWithOptions(src, opts)
	assert.Contains(t, res.Code, "age: z.number().int().optional()")
}

func TestConvert_EmptyInput(t *testing.T) {
	res := Convert("")

	assert.Equal(t, "import { z } from 'zod'\n", res.Code)
	assert.Empty(t, res.Diagnostics)
}

func TestAnalyze(t *testing.T) {
	a := Analyze("enum class Color { RED, GREEN }\ndata class P(val c: Color)", DefaultOptions())

	assert.Equal(t, dialect.Kotlin, a.Dialect)
	assert.False(t, a.Forced)
	assert.NotEmpty(t, a.Hints)
	require.Len(t, a.Enums, 1)
	require.Len(t, a.Classes, 1)
	assert.True(t, a.Known.HasEnum("Color"))
	assert.True(t, a.Known.HasClass("P"))

	a = Analyze("public class J { int x; }", DefaultOptions())
	assert.Equal(t, dialect.Java, a.Dialect)
	assert.Empty(t, a.Hints)
}

func TestConvertWithOptions_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	opts := DefaultOptions()
	opts.Logger = zap.New(core)

	ConvertWithOptions("data class U(val id: String)", opts)

	selected := logs.FilterMessage("dialect selected").All()
	require.Len(t, selected, 1)
	assert.Equal(t, "kotlin", selected[0].ContextMap()["dialect"])

	assert.Equal(t, 1, logs.FilterMessage("declarations extracted").Len())
	assert.Equal(t, 1, logs.FilterMessage("schemas generated").Len())
}
