package patches

import (
	"pushup.dev/pkg/pushup/internal/domain/splice"
	m "pushup.dev/pkg/pushup/internal/model"
)

const kotlinImports = `import android.util.Log
import java.io.File
import java.util.concurrent.CountDownLatch
import java.util.concurrent.TimeUnit

import okhttp3.OkHttpClient
import okhttp3.Request
import org.json.JSONObject`

const kotlinCachedBundleField = `private var cachedBundleFile: File? = null
`

const kotlinBundleFileOverride = `override fun getJSBundleFile(): String? {
  cachedBundleFile?.let {
    Log.d("PushUp", "Use bundle: ${it.absolutePath}")
    return it.absolutePath
  }
  Log.d("PushUp", "Use embedded bundle")
  return super.getJSBundleFile()
}`

const kotlinFetchCall = `fetchBundle()`

const kotlinFetchBundleMethod = `private fun fetchBundle() {
  val latch = CountDownLatch(1)

  Thread {
    try {
      val bundleId = packageName
      val baseUrl = getString(R.string.` + m.HostResourceName + `)

      val client = OkHttpClient.Builder()
        .connectTimeout(3, TimeUnit.SECONDS)
        .readTimeout(3, TimeUnit.SECONDS)
        .build()

      val request = Request.Builder()
        .url("$baseUrl/v1/bundle")
        .header("X-Bundle-ID", bundleId)
        .build()

      val response = client.newCall(request).execute()
      if (!response.isSuccessful) return@Thread

      val json = JSONObject(response.body!!.string())
      val bundleUrl = json.getString("bundleUrl")

      val bundleReq = Request.Builder().url(bundleUrl).build()
      val bundleRes = client.newCall(bundleReq).execute()

      val file = File(filesDir, "main.jsbundle")
      file.writeBytes(bundleRes.body!!.bytes())

      cachedBundleFile = file
      Log.d("BundleDownloader", "Downloaded bundle -> ${file.absolutePath}")
    } catch (e: Exception) {
      Log.e("BundleDownloader", "Bundle fetch failed", e)
    } finally {
      latch.countDown()
    }
  }.start()

  latch.await(3, TimeUnit.SECONDS)
}`

// kotlinDeclarationStart matches the annotations and visibility modifier
// leading a member, so a fragment placed before it does not take them over.
const kotlinDeclarationStart = `(?m)^[ \t]*(?:@[\w.:]+(?:\([^)\n]*\))?\s+)*(?:(?:public|internal|protected|private)[ \t]+)?`

// kotlin patches android/app/src/main/java/**/MainApplication.kt.
var kotlin = splice.Sequence{
	Dialect:    m.DialectKotlin,
	IndentUnit: "  ",
	Steps: []splice.Step{
		{
			Name:      "imports",
			Signature: splice.Literal("import okhttp3.OkHttpClient"),
			Fragment:  kotlinImports,
			Mandatory: true,
			Anchors: []splice.Anchor{{
				Name:      "package",
				Locator:   splice.Regex(`(?m)^package [\w.]+[ \t]*;?`),
				Placement: splice.After,
				Separator: "\n\n",
			}},
		},
		{
			Name:      "cached-bundle-field",
			Signature: splice.Literal("private var cachedBundleFile"),
			Fragment:  kotlinCachedBundleField,
			Mandatory: true,
			Anchors: []splice.Anchor{{
				Name:      "main-application-class",
				Locator:   splice.Regex(`class MainApplication\s*:\s*Application\(\)\s*,\s*ReactApplication\s*\{`),
				Placement: splice.After,
				Nested:    true,
			}},
		},
		{
			Name:      "bundle-file-override",
			Signature: splice.Literal("override fun getJSBundleFile()"),
			Fragment:  kotlinBundleFileOverride,
			Anchors: []splice.Anchor{{
				Name:      "get-packages",
				Locator:   splice.Member(`override fun getPackages\(\)\s*:\s*List<ReactPackage>`),
				Placement: splice.After,
				Separator: "\n\n",
			}},
		},
		{
			Name:      "fetch-on-create",
			Signature: splice.Pattern(`(?m)^[ \t]*fetchBundle\(\)[ \t]*\r?$`),
			Fragment:  kotlinFetchCall,
			Anchors: []splice.Anchor{{
				Name:      "on-create",
				Locator:   splice.Regex(`override fun onCreate\(\)\s*\{\s*(super\.onCreate\(\))`),
				Placement: splice.After,
			}},
		},
		{
			Name:      "fetch-bundle-method",
			Signature: splice.Literal("private fun fetchBundle()"),
			Fragment:  kotlinFetchBundleMethod,
			Anchors: []splice.Anchor{
				{
					Name:      "react-host",
					Locator:   splice.Regex(kotlinDeclarationStart + `override val reactHost\s*:\s*ReactHost`),
					Placement: splice.Before,
					Separator: "\n\n",
				},
				{
					Name:      "cached-bundle-field",
					Locator:   splice.Regex(`private var cachedBundleFile: File\? = null`),
					Placement: splice.After,
					Separator: "\n\n",
				},
			},
		},
	},
}
